package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/pinyinsearch/internal/dictionary"
)

// baseTable is a deterministic stand-in for the go-pinyin table.
var baseTable = map[rune]string{
	'中': "zhong", '国': "guo", '银': "yin", '行': "xing", '钥': "yao", '匙': "chi",
	'长': "chang", '人': "ren", '土': "tu", '块': "kuai", '好': "hao",
}

func base(r rune) string {
	if py, ok := baseTable[r]; ok {
		return py
	}
	return string(r)
}

type panickingLookup struct{}

func (panickingLookup) TryGetPinyinWithSpaces(string) (string, bool) {
	panic("broken lookup")
}

func TestMatcher(t *testing.T) {
	dict := dictionary.New(
		dictionary.PhraseEntry{Phrase: "钥匙", Pinyin: "yaoshi", PinyinWithSpaces: "yao shi"},
		dictionary.PhraseEntry{Phrase: "中国", Pinyin: "zhongguo", PinyinWithSpaces: "zhong guo"},
		dictionary.PhraseEntry{Phrase: "银行", Pinyin: "yinhang", PinyinWithSpaces: "yin hang"},
		dictionary.PhraseEntry{Phrase: "中国银行", Pinyin: "zhongguoyinhang", PinyinWithSpaces: "zhong guo yin hang"},
		dictionary.PhraseEntry{Phrase: "行长", Pinyin: "hangzhang", PinyinWithSpaces: "hang zhang"},
	)

	tests := []struct {
		name       string
		lookup     PhraseLookup
		maxLength  int
		text       string
		wantConcat string
		wantSpaced string
	}{
		{
			name:       "whole text is a phrase",
			lookup:     dict,
			text:       "钥匙",
			wantConcat: "yaoshi",
			wantSpaced: "yao shi",
		},
		{
			name:       "longest phrase wins over a shorter one at the same position",
			lookup:     dict,
			text:       "中国银行",
			wantConcat: "zhongguoyinhang",
			wantSpaced: "zhong guo yin hang",
		},
		{
			name:       "window limit forces shorter phrases",
			lookup:     dict,
			maxLength:  2,
			text:       "中国银行",
			wantConcat: "zhongguoyinhang",
			wantSpaced: "zhong guo yin hang",
		},
		{
			name:       "greedy match consumes the earlier phrase",
			lookup:     dict,
			text:       "银行长",
			wantConcat: "yinhangchang",
			wantSpaced: "yin hang chang",
		},
		{
			name:       "phrase in the middle of unknown characters",
			lookup:     dict,
			text:       "好钥匙好",
			wantConcat: "haoyaoshihao",
			wantSpaced: "hao yao shi hao",
		},
		{
			name:       "no phrase falls back to base readings",
			lookup:     dict,
			text:       "土块",
			wantConcat: "tukuai",
			wantSpaced: "tu kuai",
		},
		{
			name:       "nil lookup uses base readings only",
			lookup:     nil,
			text:       "钥匙",
			wantConcat: "yaochi",
			wantSpaced: "yao chi",
		},
		{
			name:       "failing lookup degrades to base readings",
			lookup:     panickingLookup{},
			text:       "钥匙",
			wantConcat: "yaochi",
			wantSpaced: "yao chi",
		},
		{
			name:       "empty text",
			lookup:     dict,
			text:       "",
			wantConcat: "",
			wantSpaced: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.lookup, base, tt.maxLength)
			assert.Equal(t, tt.wantConcat, m.Concat(tt.text))
			assert.Equal(t, tt.wantSpaced, m.Spaced(tt.text))
		})
	}
}

func TestMatcher_LongestMatchPriority(t *testing.T) {
	dict := dictionary.New(
		dictionary.PhraseEntry{Phrase: "银行", Pinyin: "yinxing", PinyinWithSpaces: "yin xing"},
		dictionary.PhraseEntry{Phrase: "银行行长", Pinyin: "yinhanghangzhang", PinyinWithSpaces: "yin hang hang zhang"},
	)
	m := New(dict, base, 4)
	assert.Equal(t, "yin hang hang zhang", m.Spaced("银行行长"))
}

func TestNew_Defaults(t *testing.T) {
	m := New(nil, nil, 0)
	assert.Equal(t, DefaultMaxPhraseLength, m.maxLength)
	assert.NotNil(t, m.base)
	assert.Equal(t, "tukuai", m.Concat("土块"))
}

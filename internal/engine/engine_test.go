package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/pinyinsearch/internal/dictionary"
	"github.com/at-ishikawa/pinyinsearch/internal/lru"
	mock_dictionary "github.com/at-ishikawa/pinyinsearch/internal/mocks/dictionary"
	"github.com/at-ishikawa/pinyinsearch/internal/variant"
)

func newInitializedEngine(t *testing.T, options Options) *Engine {
	t.Helper()
	e, err := New(options)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(context.Background()))
	return e
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(o *Options)
		wantErr error
		wantAny bool
	}{
		{
			name:   "default options",
			modify: func(o *Options) {},
		},
		{
			name:    "unknown strategy",
			modify:  func(o *Options) { o.Strategy = "fuzzy" },
			wantAny: true,
		},
		{
			name:    "zero pinyin cache capacity",
			modify:  func(o *Options) { o.PinyinCacheCapacity = 0 },
			wantErr: lru.ErrInvalidCapacity,
		},
		{
			name:    "negative initials cache capacity",
			modify:  func(o *Options) { o.InitialsCacheCapacity = -1 },
			wantErr: lru.ErrInvalidCapacity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultOptions()
			tt.modify(&options)
			got, err := New(options)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			if tt.wantAny {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.False(t, got.Initialized())
		})
	}
}

func TestEngine_DictionaryStrategy(t *testing.T) {
	e := newInitializedEngine(t, DefaultOptions())

	tests := []struct {
		name         string
		text         string
		wantPinyin   string
		wantInitials string
	}{
		{name: "phrase with a neutral tone", text: "钥匙", wantPinyin: "yaoshi", wantInitials: "ys"},
		{name: "heteronym resolved by phrase", text: "银行", wantPinyin: "yinhang", wantInitials: "yh"},
		{name: "longer phrase", text: "中国银行", wantPinyin: "zhongguoyinhang", wantInitials: "zgyh"},
		{name: "segmented text", text: "钥匙土块", wantPinyin: "yaoshitukuai", wantInitials: "ystk"},
		{name: "empty", text: "", wantPinyin: "", wantInitials: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPinyin, e.Pinyin(tt.text))
			assert.Equal(t, tt.wantInitials, e.Initials(tt.text))
		})
	}
}

func TestEngine_Matches(t *testing.T) {
	e := newInitializedEngine(t, DefaultOptions())

	tests := []struct {
		name      string
		candidate string
		query     string
		want      bool
	}{
		{name: "pinyin prefix", candidate: "钥匙", query: "yao", want: true},
		{name: "full pinyin", candidate: "钥匙", query: "yaoshi", want: true},
		{name: "initials", candidate: "钥匙", query: "ys", want: true},
		{name: "upper case query", candidate: "钥匙", query: "YS", want: true},
		{name: "middle of pinyin", candidate: "钥匙", query: "oshi", want: true},
		{name: "no match", candidate: "钥匙", query: "xyz", want: false},
		{name: "empty query", candidate: "钥匙", query: "", want: false},
		{name: "empty candidate", candidate: "", query: "yao", want: false},
		{name: "dictionary reading only", candidate: "银行", query: "yinxing", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Matches(tt.candidate, tt.query))
		})
	}
}

func TestEngine_Filter(t *testing.T) {
	e := newInitializedEngine(t, DefaultOptions())

	got := e.Filter([]string{"钥匙", "银行", "土块", "钥匙扣"}, "ys")
	assert.Equal(t, []string{"钥匙", "钥匙扣"}, got)
	assert.Nil(t, e.Filter([]string{"钥匙"}, "zzz"))
}

func TestEngine_DictionaryLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_dictionary.NewMockSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("unavailable"))

	options := DefaultOptions()
	options.Source = source
	e := newInitializedEngine(t, options)

	assert.True(t, e.Initialized())
	assert.Equal(t, 0, e.Stats().DictionaryPhrases)
	assert.Equal(t, "tukuai", e.Pinyin("土块"))
	assert.Equal(t, "tk", e.Initials("土块"))
	assert.True(t, e.Matches("土块", "tk"))
}

type panickingSource struct{}

func (panickingSource) Load(context.Context) (*dictionary.Dictionary, error) {
	panic("broken source")
}

func TestEngine_DictionaryLoadPanic(t *testing.T) {
	tests := []struct {
		name   string
		source dictionary.Source
	}{
		{name: "source panics", source: panickingSource{}},
		{name: "database source without a repository", source: dictionary.DBSource{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultOptions()
			options.Source = tt.source
			e, err := New(options)
			require.NoError(t, err)

			require.NotPanics(t, func() {
				assert.NoError(t, e.Initialize(context.Background()))
			})
			assert.True(t, e.Initialized())
			assert.Equal(t, 0, e.Stats().DictionaryPhrases)
			assert.Equal(t, "tukuai", e.Pinyin("土块"))
			assert.True(t, e.Matches("土块", "tk"))
		})
	}
}

func TestEngine_VariantStrategyOverCap(t *testing.T) {
	text := "行长重乐还藏假召调"

	tests := []struct {
		name        string
		maxVariants int
	}{
		{name: "uncapped", maxVariants: 0},
		{name: "capped", maxVariants: 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultOptions()
			options.Strategy = StrategyVariant
			options.MaxVariants = tt.maxVariants
			e := newInitializedEngine(t, options)

			assert.True(t, e.Matches(text, "xingzhang"))
			assert.True(t, e.Matches(text, "hangzhang"))
			assert.True(t, e.Matches(text, "hangchang"))
		})
	}
}

func TestEngine_CustomSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_dictionary.NewMockSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(dictionary.New(dictionary.PhraseEntry{
		Phrase:           "土块",
		Pinyin:           "tukuaier",
		PinyinWithSpaces: "tu kuai er",
	}), nil).Times(1)

	options := DefaultOptions()
	options.Source = source
	e := newInitializedEngine(t, options)
	require.NoError(t, e.Initialize(context.Background()))

	assert.Equal(t, "tukuaier", e.Pinyin("土块"))
	assert.Equal(t, "tke", e.Initials("土块"))
	assert.Equal(t, 1, e.Stats().DictionaryPhrases)
}

func TestEngine_NilSource(t *testing.T) {
	options := DefaultOptions()
	options.Source = nil
	e := newInitializedEngine(t, options)

	assert.Equal(t, 0, e.Stats().DictionaryPhrases)
	assert.Equal(t, "tukuai", e.Pinyin("土块"))
}

func TestEngine_Lifecycle(t *testing.T) {
	e, err := New(DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "", e.Pinyin("钥匙"))
	assert.Equal(t, "", e.Initials("钥匙"))
	assert.False(t, e.Matches("钥匙", "ys"))
	assert.Nil(t, e.Variants("银行"))
	assert.False(t, e.HasVariants("银行"))
	e.Warmup([]string{"钥匙"})

	require.NoError(t, e.Initialize(context.Background()))
	require.NoError(t, e.Initialize(context.Background()))
	assert.True(t, e.Initialized())
	assert.Equal(t, "yaoshi", e.Pinyin("钥匙"))

	e.Teardown()
	assert.False(t, e.Initialized())
	assert.Equal(t, "", e.Pinyin("钥匙"))
	assert.Equal(t, Stats{Strategy: StrategyDictionary}, e.Stats())

	require.NoError(t, e.Initialize(context.Background()))
	assert.Equal(t, "ys", e.Initials("钥匙"))
}

func TestEngine_Warmup(t *testing.T) {
	options := DefaultOptions()
	options.PinyinCacheCapacity = 2
	options.InitialsCacheCapacity = 3
	e := newInitializedEngine(t, options)

	e.Warmup([]string{"钥匙", "银行", "土块", "", "钥匙"})

	stats := e.Stats()
	assert.Equal(t, 2, stats.PinyinCached)
	assert.Equal(t, 3, stats.InitialsCached)
	assert.Equal(t, "yaoshi", e.Pinyin("钥匙"))
}

func TestEngine_RecoversFromPanics(t *testing.T) {
	options := DefaultOptions()
	options.Source = nil
	options.BaseReading = func(r rune) string {
		if r == '坏' {
			panic("broken table")
		}
		return "x"
	}
	e := newInitializedEngine(t, options)

	assert.NotPanics(t, func() {
		assert.Equal(t, "xx", e.Pinyin("好好"))
		assert.Equal(t, "xx", e.Initials("好好"))
		_ = e.Pinyin("坏")
		_ = e.Initials("坏")
		_ = e.Matches("坏", "x")
		e.Warmup([]string{"坏", "好"})
	})
}

func TestEngine_VariantStrategy(t *testing.T) {
	options := DefaultOptions()
	options.Strategy = StrategyVariant
	options.VariantTable = variant.Table{'行': {"xing", "hang"}}
	options.BaseReading = func(r rune) string {
		return map[rune]string{'银': "yin", '行': "xing", '土': "tu"}[r]
	}
	e := newInitializedEngine(t, options)

	assert.Equal(t, 0, e.Stats().DictionaryPhrases)
	assert.Equal(t, "yinxing", e.Pinyin("银行"))
	assert.Equal(t, "yx", e.Initials("银行"))
	assert.True(t, e.HasVariants("银行"))
	assert.False(t, e.HasVariants("土"))

	variants := e.Variants("银行")
	require.Len(t, variants, 2)
	assert.Equal(t, "yin xing", variants[0].Spaced())
	assert.Equal(t, "yin hang", variants[1].Spaced())

	tests := []struct {
		query string
		want  bool
	}{
		{query: "yinxing", want: true},
		{query: "yinhang", want: true},
		{query: "yh", want: true},
		{query: "hang", want: true},
		{query: "yinhe", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Matches("银行", tt.query))
		})
	}
}

func TestEngine_DictionaryStrategyHasNoVariants(t *testing.T) {
	e := newInitializedEngine(t, DefaultOptions())

	assert.False(t, e.HasVariants("银行"))
	assert.Nil(t, e.Variants("银行"))
}

func TestStrategy_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    Strategy
		wantErr bool
	}{
		{value: "dictionary", want: StrategyDictionary},
		{value: "variant", want: StrategyVariant},
		{value: "fuzzy", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var got Strategy
			err := got.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.value, got.String())
			assert.Equal(t, "Strategy", got.Type())
		})
	}
}

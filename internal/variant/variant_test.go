package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTable = map[rune]string{
	'重': "zhong", '行': "xing", '钥': "yao", '匙': "chi", '土': "tu", '块': "kuai",
	'差': "cha", '银': "yin",
}

func base(r rune) string {
	if py, ok := baseTable[r]; ok {
		return py
	}
	if r == ' ' {
		return ""
	}
	return string(r)
}

func pinyins(variants []Variant) []string {
	result := make([]string, 0, len(variants))
	for _, v := range variants {
		result = append(result, v.Pinyin())
	}
	return result
}

func TestExpander_ReadingsFor(t *testing.T) {
	table := Table{
		'重': {"zhong", "chong"},
		'匙': {"shi"},
	}
	e := New(table, base, 0)

	tests := []struct {
		name string
		r    rune
		want []string
	}{
		{
			name: "default reading is merged with table readings",
			r:    '重',
			want: []string{"zhong", "chong"},
		},
		{
			name: "default reading not in the table comes first",
			r:    '匙',
			want: []string{"chi", "shi"},
		},
		{
			name: "character outside the table",
			r:    '土',
			want: []string{"tu"},
		},
		{
			name: "character without a reading",
			r:    ' ',
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ReadingsFor(tt.r))
		})
	}
}

func TestExpander_Expand(t *testing.T) {
	table := Table{
		'重': {"zhong", "chong"},
		'行': {"xing", "hang"},
		'差': {"cha", "chai", "ci"},
	}

	tests := []struct {
		name        string
		maxVariants int
		text        string
		want        []string
	}{
		{
			name: "text without heteronyms yields the default reading",
			text: "土块",
			want: []string{"tukuai"},
		},
		{
			name: "one heteronym",
			text: "银行",
			want: []string{"yinxing", "yinhang"},
		},
		{
			name: "two heteronyms give the product of their readings",
			text: "重行",
			want: []string{"zhongxing", "zhonghang", "chongxing", "chonghang"},
		},
		{
			name: "two and three readings",
			text: "行差",
			want: []string{"xingcha", "xingchai", "xingci", "hangcha", "hangchai", "hangci"},
		},
		{
			name:        "product within the cap is complete",
			maxVariants: 4,
			text:        "重行",
			want:        []string{"zhongxing", "zhonghang", "chongxing", "chonghang"},
		},
		{
			name:        "cap keeps the variants closest to the default",
			maxVariants: 3,
			text:        "重行",
			want:        []string{"zhongxing", "zhonghang", "chongxing"},
		},
		{
			name:        "cap prefers one alternate reading over two",
			maxVariants: 4,
			text:        "重行差",
			want:        []string{"zhongxingcha", "zhongxingchai", "zhongxingci", "zhonghangcha"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(table, base, tt.maxVariants)
			assert.Equal(t, tt.want, pinyins(e.Expand(tt.text)))
		})
	}
}

func TestExpander_VariantCount(t *testing.T) {
	table := Table{
		'重': {"zhong", "chong"},
		'差': {"cha", "chai", "ci"},
	}
	e := New(table, base, 0)

	variants := e.Expand("重土差")
	require.Len(t, variants, 2*3)

	seen := make(map[string]struct{})
	for _, v := range variants {
		seen[v.Pinyin()] = struct{}{}
	}
	assert.Len(t, seen, 6)
}

func TestExpander_ExpandOverCap(t *testing.T) {
	text := "行长重乐还藏假召调"
	table := Table{
		'行': {"xing", "hang"},
		'长': {"chang", "zhang"},
		'重': {"zhong", "chong"},
		'乐': {"le", "yue"},
		'还': {"hai", "huan"},
		'藏': {"cang", "zang"},
		'假': {"jia", "jie"},
		'召': {"zhao", "shao"},
		'调': {"tiao", "diao"},
	}
	defaults := func(r rune) string {
		return table[r][0]
	}

	tests := []struct {
		name        string
		maxVariants int
		wantCount   int
	}{
		{name: "uncapped", maxVariants: 0, wantCount: 512},
		{name: "capped", maxVariants: 256, wantCount: 256},
		{name: "cap of one variant per alternate", maxVariants: 10, wantCount: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants := New(table, defaults, tt.maxVariants).Expand(text)
			require.Len(t, variants, tt.wantCount)

			got := make(map[string]struct{}, len(variants))
			for _, v := range variants {
				got[v.Pinyin()] = struct{}{}
			}
			assert.Contains(t, got, "xingchangzhonglehaicangjiazhaotiao")
			assert.Contains(t, got, "hangchangzhonglehaicangjiazhaotiao", "alternate of the first character")
			assert.Contains(t, got, "xingchangzhonglehaicangjiazhaodiao", "alternate of the last character")
			if tt.maxVariants == 0 || tt.maxVariants >= 256 {
				assert.Contains(t, got, "hangzhangzhonglehaicangjiazhaotiao")
			}
		})
	}
}

func TestExpander_Contains(t *testing.T) {
	e := New(Table{'行': {"xing", "hang"}}, base, 0)
	assert.True(t, e.Contains("银行"))
	assert.False(t, e.Contains("土块"))
	assert.False(t, e.Contains(""))
}

func TestVariant(t *testing.T) {
	v := Variant{Syllables: []string{"yao", "shi"}}
	assert.Equal(t, "yaoshi", v.Pinyin())
	assert.Equal(t, "yao shi", v.Spaced())
	assert.Equal(t, "ys", v.Initials())
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	for r, readings := range table {
		assert.GreaterOrEqual(t, len(readings), 2, "character %c", r)
	}

	table['行'][0] = "changed"
	assert.Equal(t, "xing", DefaultTable()['行'][0], "DefaultTable returns a copy")
}

func TestNew_Defaults(t *testing.T) {
	e := New(nil, nil, 0)
	assert.Equal(t, DefaultMaxVariants, e.maxVariants)
	assert.Equal(t, 0, New(nil, nil, -1).maxVariants)
	assert.True(t, e.Contains("银行"))
	assert.Equal(t, "tukuai", e.Default("土块").Pinyin())
}

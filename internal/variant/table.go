package variant

// Table maps a heteronym to its alternative readings.
type Table map[rune][]string

// builtin lists common characters whose reading depends on the word they
// appear in. Readings are tone-free with ü written as v.
var builtin = Table{
	'行': {"xing", "hang"},
	'长': {"chang", "zhang"},
	'重': {"zhong", "chong"},
	'乐': {"le", "yue"},
	'处': {"chu", "cu"},
	'还': {"hai", "huan"},
	'藏': {"cang", "zang"},
	'假': {"jia", "jie"},
	'召': {"zhao", "shao"},
	'调': {"tiao", "diao"},
	'传': {"chuan", "zhuan"},
	'差': {"cha", "chai", "ci"},
	'觉': {"jue", "jiao"},
	'了': {"le", "liao"},
	'解': {"jie", "xie"},
	'单': {"dan", "shan", "chan"},
	'朝': {"chao", "zhao"},
	'降': {"jiang", "xiang"},
	'薄': {"bao", "bo"},
	'便': {"bian", "pian"},
	'大': {"da", "dai"},
	'率': {"lv", "shuai"},
	'参': {"can", "shen", "cen"},
	'盛': {"sheng", "cheng"},
	'数': {"shu", "shuo"},
	'卡': {"ka", "qia"},
	'会': {"hui", "kuai"},
	'系': {"xi", "ji"},
	'模': {"mo", "mu"},
	'角': {"jiao", "jue"},
	'着': {"zhe", "zhao", "zhuo"},
	'曾': {"ceng", "zeng"},
	'都': {"dou", "du"},
	'匙': {"chi", "shi"},
	'钥': {"yao", "yue"},
	'地': {"di", "de"},
	'得': {"de", "dei"},
	'和': {"he", "huo", "hu"},
	'给': {"gei", "ji"},
	'区': {"qu", "ou"},
	'查': {"cha", "zha"},
	'仇': {"chou", "qiu"},
	'省': {"sheng", "xing"},
	'奇': {"qi", "ji"},
	'强': {"qiang", "jiang"},
}

// DefaultTable returns a copy of the built-in heteronym table.
func DefaultTable() Table {
	table := make(Table, len(builtin))
	for r, readings := range builtin {
		table[r] = append([]string(nil), readings...)
	}
	return table
}

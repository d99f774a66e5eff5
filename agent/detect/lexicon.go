package detect

// defaultLexicon seeds new detectors with hold'em vocabulary in both Chinese
// and English. Multi-word entries stay for completeness even though most
// segmenters emit them as separate terms.
var defaultLexicon = []string{
	// core terms
	"德州扑克", "扑克", "poker", "texas holdem", "holdem",
	"牌局", "game", "底池", "pot", "盲注", "blind",
	"小盲", "small blind", "大盲", "big blind", "庄家", "dealer",
	"按钮", "button", "位置", "position",

	// streets
	"翻牌", "flop", "转牌", "turn", "河牌", "river",
	"公共牌", "community cards", "手牌", "hole cards",

	// actions
	"弃牌", "fold", "跟注", "call", "加注", "raise",
	"全押", "all in", "下注", "bet", "过牌", "check",
	"梭哈", "诈唬", "bluff", "偷盲", "steal",

	// hand categories
	"同花顺", "straight flush", "四条", "four of a kind",
	"葫芦", "full house", "同花", "flush", "顺子", "straight",
	"三条", "three of a kind", "两对", "two pair",
	"一对", "one pair", "高牌", "high card",

	// holdings and suits
	"AA", "KK", "QQ", "JJ", "TT", "AK", "AQ", "AJ",
	"KQ", "KJ", "QJ", "红桃", "hearts", "黑桃", "spades",
	"梅花", "clubs", "方块", "diamonds",
	"A", "K", "Q", "J", "10", "9", "8", "7", "6", "5", "4", "3", "2",
}

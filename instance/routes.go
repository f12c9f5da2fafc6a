package instance

// TargetRoutes maps known Li & Lim instance basenames (without directory or
// extension, e.g. "lc101") to their published best-known vehicle count, used
// when the CLI's --target-routes flag is not given. Entries absent from this
// table simply leave TargetRoutes unset (Options.TargetRoutes stays 0, and
// the driver runs until no further route can be ejected).
var TargetRoutes = map[string]int{
	"lc101": 10,
	"lc102": 10,
	"lc103": 9,
	"lc104": 9,
	"lc105": 10,
	"lc106": 10,
	"lc107": 10,
	"lc108": 10,
	"lc109": 9,
	"lr101": 19,
	"lr102": 17,
	"lr103": 13,
	"lr104": 9,
	"lr105": 14,
	"lr106": 12,
	"lr107": 10,
	"lr108": 9,
	"lr109": 11,
	"lr110": 10,
	"lr111": 10,
	"lr112": 9,
	"lrc101": 14,
	"lrc102": 12,
	"lrc103": 11,
	"lrc104": 10,
	"lrc105": 13,
	"lrc106": 11,
	"lrc107": 11,
	"lrc108": 10,
}

// Package campus holds the reference points of the Xidian University campuses
// and loaders for alternative reference tables.
package campus

// Campus cluster identifiers.
const (
	South = "south"
	North = "north"
)

const (
	southInnerNorth = "西安市长安区兴隆街道内环北路西安电子科技大学(南校区)"
	southInnerSouth = "西安市长安区兴隆街道内环南路西安电子科技大学(南校区)"
	southOuterNorth = "西安市长安区兴隆街道外环北路西安电子科技大学(南校区)"
	southWutong     = "西安市长安区兴隆街道梧桐大道西安电子科技大学(南校区)"
	northMain       = "西安市雁塔区电子城街道电子大道北段西安电子科技大学"
)

// entry is one row of the built-in reference table.
type entry struct {
	Name    string
	Campus  string
	Lat     float64
	Lon     float64
	Address string
}

// builtin lists the reference points in matching order.
// Source: https://github.com/Pairman/Xdcheckin/blob/main/src/xdcheckin/server/static/g_locations.js
var builtin = []entry{
	{"A楼", South, 34.133171, 108.837420, southInnerNorth},
	{"B楼", South, 34.132297, 108.838367, southInnerNorth},
	{"C楼", South, 34.131125, 108.838983, southInnerNorth},
	{"D楼", South, 34.130856, 108.841579, southInnerNorth},
	{"EI楼", South, 34.130878, 108.839863, southInnerNorth},
	{"EII楼", South, 34.130856, 108.841579, southInnerNorth},
	{"EIII楼", South, 34.130056, 108.843268, southInnerNorth},
	{"F楼", South, 34.130654, 108.843016, southInnerNorth},
	{"G楼", South, 34.129660, 108.845244, southInnerNorth},
	{"信远楼", South, 34.131640, 108.845415, southOuterNorth},
	{"图书馆", South, 34.131125, 108.838983, southInnerSouth},
	{"大学生活动中心", South, 34.134972, 108.835282, southWutong},
	{"北操场", South, 34.137362, 108.837906, southWutong},
	{"北篮球场", South, 34.134972, 108.835282, southWutong},
	{"北乒乓球场", South, 34.134972, 108.835282, southWutong},
	{"游泳中心", South, 34.134972, 108.835282, southWutong},
	{"南操场", South, 34.132559, 108.832542, southWutong},
	{"南篮球场", South, 34.128472, 108.832443, southWutong},
	{"南乒乓球场", South, 34.129376, 108.834375, southWutong},
	{"远望谷体育馆", South, 34.126418, 108.844544, southInnerSouth},
	{"博物馆", South, 34.125589, 108.844337, southInnerSouth},
	{"网安大楼", South, 34.128353, 108.842010, southInnerSouth},
	{"礼仪广场", South, 34.132006, 108.842118, southInnerNorth},
	{"西大楼", North, 34.240976, 108.923468, northMain},
	{"阶梯楼", North, 34.238268, 108.926841, northMain},
	{"北校区体育馆", North, 34.232305, 108.915958, northMain},
	{"北校区室外篮球场", North, 34.232459, 108.917250, northMain},
	{"北校区操场", North, 34.231810, 108.918339, northMain},
	{"北校区图书馆", North, 34.231394, 108.916595, northMain},
	{"北校区会议中心", North, 34.230493, 108.917517, northMain},
}

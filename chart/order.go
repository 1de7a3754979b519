package chart

// Child element sequences from the DrawingML Chart schema. Setters insert new
// children ahead of the first sibling that follows them here.

var axisHead = []string{
	"c:axId", "c:scaling", "c:delete", "c:axPos", "c:majorGridlines",
	"c:minorGridlines", "c:title", "c:numFmt", "c:majorTickMark",
	"c:minorTickMark", "c:tickLblPos", "c:spPr", "c:txPr", "c:crossAx",
	"c:crosses", "c:crossesAt",
}

var axisOrders = map[string][]string{
	"c:catAx": join(axisHead, "c:auto", "c:lblAlgn", "c:lblOffset",
		"c:tickLblSkip", "c:tickMarkSkip", "c:noMultiLvlLbl", "c:extLst"),
	"c:valAx": join(axisHead, "c:crossBetween", "c:majorUnit", "c:minorUnit",
		"c:dispUnits", "c:extLst"),
	"c:dateAx": join(axisHead, "c:auto", "c:lblOffset", "c:baseTimeUnit",
		"c:majorUnit", "c:majorTimeUnit", "c:minorUnit", "c:minorTimeUnit",
		"c:extLst"),
	"c:serAx": join(axisHead, "c:tickLblSkip", "c:tickMarkSkip", "c:extLst"),
}

var scalingOrder = []string{"c:logBase", "c:orientation", "c:max", "c:min", "c:extLst"}

func join(head []string, tail ...string) []string {
	out := make([]string, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}

func orderFor(tag string) []string {
	if order, ok := axisOrders[tag]; ok {
		return order
	}
	return axisOrders["c:valAx"]
}

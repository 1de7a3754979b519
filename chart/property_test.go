package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/chartkit/oxml"
	"github.com/wudi/chartkit/oxml/cxml"
)

func TestAxisSet(t *testing.T) {
	tests := []struct {
		expr  string
		prop  string
		value interface{}
		want  string
	}{
		{"c:valAx", PropVisible, true, "c:valAx/c:delete{val=0}"},
		{"c:valAx/c:delete{val=0}", PropVisible, false, "c:valAx/c:delete"},
		{"c:valAx/c:scaling", PropMaximumScale, 12.5, "c:valAx/c:scaling/c:max{val=12.5}"},
		{"c:valAx/c:scaling", PropMaximumScale, int64(7), "c:valAx/c:scaling/c:max{val=7}"},
		{"c:valAx/c:scaling/c:max{val=3}", PropMaximumScale, nil, "c:valAx/c:scaling"},
		{"c:valAx/c:scaling", PropMinimumScale, 2, "c:valAx/c:scaling/c:min{val=2}"},
		{"c:valAx/c:scaling/c:min{val=3}", PropMinimumScale, nil, "c:valAx/c:scaling"},
		{"c:valAx", PropMajorTickMark, "out", "c:valAx/c:majorTickMark{val=out}"},
		{"c:valAx", PropMinorTickMark, TickMarkInside, "c:valAx/c:minorTickMark{val=in}"},
		{"c:valAx/c:minorTickMark{val=in}", PropMinorTickMark, "cross", "c:valAx"},
		{"c:valAx", PropHasMajorGridlines, true, "c:valAx/c:majorGridlines"},
		{"c:valAx/c:minorGridlines", PropHasMinorGridlines, false, "c:valAx"},
		{"c:valAx", PropReverseOrder, true, "c:valAx/c:scaling/c:orientation{val=maxMin}"},
		{"c:valAx", PropTickLabelPosition, "high", "c:valAx/c:tickLblPos{val=high}"},
		{"c:valAx", PropTickLabelPosition, TickLabelNone, "c:valAx/c:tickLblPos{val=none}"},
		{"c:valAx", PropNumberFormat, "0%", "c:valAx/c:numFmt{formatCode=0%}"},
		{"c:valAx", PropNumberFormatIsLinked, true, "c:valAx/c:numFmt{formatCode=General,sourceLinked=1}"},
		{"c:catAx", PropTickLabelOffset, float64(300), "c:catAx/c:lblOffset{val=300}"},
	}
	for _, tt := range tests {
		t.Run(tt.expr+"/"+tt.prop, func(t *testing.T) {
			axis := axisFor(tt.expr)
			require.NoError(t, axis.Set(tt.prop, tt.value))
			assert.Equal(t, cxml.XML(tt.want), oxml.XML(axis.Element()))
		})
	}
}

func TestAxisSetInvalid(t *testing.T) {
	tests := []struct {
		prop  string
		value interface{}
	}{
		{PropVisible, "foobar"},
		{PropVisible, 1},
		{PropVisible, nil},
		{PropHasMajorGridlines, "yes"},
		{PropMaximumScale, "12"},
		{PropMinimumScale, true},
		{PropMaximumScale, nan()},
		{PropMajorTickMark, 3},
		{PropMajorTickMark, "sideways"},
		{PropMajorTickMark, TickMark(9)},
		{PropMinorTickMark, TickMark(-1)},
		{PropTickLabelPosition, 1.5},
		{PropTickLabelPosition, "middle"},
		{PropTickLabelPosition, TickLabelPosition(-1)},
		{PropTickLabelPosition, TickLabelPosition(4)},
		{PropNumberFormat, 12},
		{PropTickLabelOffset, 2.5},
		{PropTickLabelOffset, 5000},
	}
	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			axis := axisFor("c:catAx")
			err := axis.Set(tt.prop, tt.value)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oxml.ErrInvalidArgument), "%v", err)
			assert.Equal(t, cxml.XML("c:catAx"), oxml.XML(axis.Element()))
		})
	}
}

func TestAxisCheck(t *testing.T) {
	axis := axisFor("c:valAx/c:delete")
	require.NoError(t, axis.Check(PropVisible, true))
	assert.True(t, errors.Is(axis.Check(PropTickLabelOffset, 50), oxml.ErrInvalidArgument))
	assert.True(t, errors.Is(axis.Check(PropMajorTickMark, TickMark(9)), oxml.ErrInvalidArgument))
	assert.Equal(t, cxml.XML("c:valAx/c:delete"), oxml.XML(axis.Element()))

	cat := axisFor("c:catAx")
	require.NoError(t, cat.Check(PropTickLabelOffset, MaxLabelOffset))
	assert.Error(t, cat.Check(PropTickLabelOffset, MaxLabelOffset+1))
	assert.Equal(t, cxml.XML("c:catAx"), oxml.XML(cat.Element()))
}

func TestAxisUnknownProperty(t *testing.T) {
	axis := axisFor("c:valAx")
	assert.True(t, errors.Is(axis.Set("colour", "red"), oxml.ErrUnknownProperty))
	_, err := axis.Get("colour")
	assert.True(t, errors.Is(err, oxml.ErrUnknownProperty))
}

func TestAxisGet(t *testing.T) {
	axis := axisFor("c:catAx/(c:scaling/(c:orientation{val=maxMin},c:max{val=9.5}),c:delete{val=0}," +
		"c:majorGridlines,c:numFmt{formatCode=0.0,sourceLinked=1},c:majorTickMark{val=out},c:tickLblPos{val=low},c:lblOffset{val=50})")
	want := map[string]interface{}{
		PropVisible:              true,
		PropMaximumScale:         9.5,
		PropMinimumScale:         nil,
		PropMajorTickMark:        "out",
		PropMinorTickMark:        "cross",
		PropHasMajorGridlines:    true,
		PropHasMinorGridlines:    false,
		PropReverseOrder:         true,
		PropTickLabelPosition:    "low",
		PropNumberFormat:         "0.0",
		PropNumberFormatIsLinked: true,
		PropTickLabelOffset:      50,
	}
	require.Len(t, Properties, len(want))
	for _, prop := range Properties {
		got, err := axis.Get(prop)
		require.NoError(t, err, prop)
		assert.Equal(t, want[prop], got, prop)
	}
}

func TestAxisGetSetRoundTrip(t *testing.T) {
	src := axisFor("c:valAx/(c:scaling/c:min{val=-5},c:delete{val=0},c:minorGridlines,c:numFmt{formatCode=#},c:minorTickMark{val=none})")
	dst := axisFor("c:valAx")
	for _, prop := range Properties {
		if prop == PropTickLabelOffset {
			continue
		}
		v, err := src.Get(prop)
		require.NoError(t, err)
		require.NoError(t, dst.Set(prop, v), prop)
	}
	for _, prop := range Properties {
		want, _ := src.Get(prop)
		got, _ := dst.Get(prop)
		assert.Equal(t, want, got, prop)
	}
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}

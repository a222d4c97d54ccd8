package outwriter

import "github.com/huangsam/heatgrid/schema"

func lvl(l schema.ActivityLevel) *schema.Contribution {
	return &schema.Contribution{Level: l}
}

// sampleHeatmap is a partial first week followed by a full week.
func sampleHeatmap() schema.Heatmap {
	return schema.Heatmap{Weeks: []schema.Week{
		{nil, nil, nil, nil, lvl(1), lvl(2), lvl(3)},
		{lvl(1), lvl(2), lvl(3), lvl(4), lvl(4), lvl(4), lvl(4)},
	}}
}

package universe

// Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

// GliderTemplate is the canonical glider heading to the bottom right corner
var GliderTemplate = Template{
	Name:  PatternGlider,
	Descr: "the glider spawned at the origin",
	Coordinates: [][]int{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	},
}

// bounds returns the size of the box covering the template coordinates from the origin
func (t Template) bounds() (width int, height int) {
	for _, v := range t.Coordinates {
		if len(v) < 2 {
			continue
		}
		if v[0]+1 > width {
			width = v[0] + 1
		}
		if v[1]+1 > height {
			height = v[1] + 1
		}
	}
	return
}

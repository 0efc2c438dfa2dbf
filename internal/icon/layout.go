package icon

import imgcolor "image/color"

// OutputPath is where Run writes the icon, relative to the working directory.
const OutputPath = "assets/images/twad_logo_tamil.png"

const (
	Size = 512

	center = Size / 2

	// Outer mask circle, bounding box [40, 40, 472, 472].
	maskRadius = center - 40
	// Inner white circle, bounding box [56, 56, 456, 456].
	innerRadius = center - 56

	lineSpacing = 4
)

const (
	tamilText    = "தமிழ்நாடு\nகுடிநீர் வடிகால்\nவாரியம்"
	titleText    = "TWAD"
	subtitleText = "Water Board"

	tamilY    = 150
	titleY    = 280
	subtitleY = 320

	tamilSize    = 36
	titleSize    = 48
	subtitleSize = 24
)

var (
	backgroundColor = imgcolor.RGBA{21, 101, 192, 255} // TWAD blue
	circleColor     = imgcolor.RGBA{255, 255, 255, 255}
	textColor       = imgcolor.RGBA{21, 101, 192, 255}
	subtitleColor   = imgcolor.RGBA{25, 118, 210, 255}
	dropColor       = imgcolor.RGBA{33, 150, 243, 255}
)

// Water drop: an ellipse with bounding box [240, 350, 260, 380] under a
// small triangle tip.
var (
	dropCenterX, dropCenterY = 250.0, 365.0
	dropRadiusX, dropRadiusY = 10.0, 15.0
	dropTip                  = [3][2]float64{{250, 340}, {245, 355}, {255, 355}}
)

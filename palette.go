package village

import "github.com/gogpu/gg"

func rgb255(r, g, b float64) gg.RGBA {
	return gg.RGB(r/255, g/255, b/255)
}

// Scene colors. Values follow the original 0-255 palette.
var (
	skyCyan     = gg.RGB(0, 0.9, 0.9)
	grassGreen  = gg.RGB(0, 1, 0)
	riverBlue   = rgb255(100, 149, 237)
	hillDark    = rgb255(184, 134, 11)
	hillLight   = rgb255(218, 165, 32)
	chocolate   = rgb255(210, 105, 30)
	sandyBrown  = rgb255(244, 164, 96)
	sienna      = rgb255(160, 82, 45)
	navajoWhite = rgb255(255, 222, 173)
	burlyWood   = rgb255(222, 184, 135)
	saddleBrown = rgb255(139, 69, 19)
	leafGreen   = gg.RGB(0, 128.0/255, 0)
	sunGold     = rgb255(255, 215, 0)
	sunHalo     = rgb255(255, 236, 139)
	peru        = rgb255(205, 133, 63)
	sailPurple  = rgb255(128, 0, 128)
	cloudWhite  = gg.RGB(1, 1, 1)
	hullBlack   = gg.RGB(0, 0, 0)

	roadGray    = rgb255(90, 90, 90)
	laneWhite   = rgb255(240, 240, 240)
	railBrown   = rgb255(120, 72, 40)
	carRed      = rgb255(200, 30, 40)
	carDarkRed  = rgb255(140, 20, 28)
	glassBlue   = rgb255(170, 210, 240)
	tyreBlack   = rgb255(25, 25, 25)
	hubSilver   = rgb255(192, 192, 192)
	lampYellow  = rgb255(255, 240, 120)
	millStone   = rgb255(236, 226, 198)
	millShade   = rgb255(196, 182, 150)
	millRoof    = rgb255(150, 40, 30)
	sailCanvas  = rgb255(250, 248, 240)
	sparBrown   = rgb255(101, 67, 33)
	birdBlack   = rgb255(30, 30, 40)
	cowWhite    = rgb255(250, 250, 245)
	cowShade    = rgb255(205, 205, 198)
	cowHighlite = gg.RGB(1, 1, 1)
	cowSpot     = rgb255(35, 30, 30)
	cowPink     = rgb255(240, 170, 170)
	hoofGray    = rgb255(70, 65, 60)
	grassShadow = gg.RGBA2(0, 0.35, 0, 0.45)
	hudInk      = rgb255(20, 40, 60)
)

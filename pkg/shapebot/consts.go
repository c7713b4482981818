package shapebot

const helpMsg = "I keep a selection of grid cells for you. Cells are written x:y.\n\n" +
	"/rect x y offsetX offsetY - select a rectangle\n" +
	"/circle x y radius - select a circle\n" +
	"/disc x y radius - select a symmetric disc\n" +
	"/addrect, /addcircle, /adddisc - add a shape to the selection\n" +
	"/minusrect, /minuscircle, /minusdisc - remove a shape from the selection\n" +
	"/add x:y ... - add cells\n" +
	"/minus x:y ... - remove cells\n" +
	"/show - draw the selection\n" +
	"/ids - list the selected cells\n" +
	"/undo - go back one step\n" +
	"/clear - empty the selection\n\n" +
	"Rectangles span [x-offsetX, x+offsetX) and [y-offsetY, y+offsetY). " +
	"Circles are cut from that box; discs are not."

const (
	showButtonText  = "🖼 Show"
	idsButtonText   = "🔢 IDs"
	undoButtonText  = "↩️ Undo"
	clearButtonText = "🗑 Clear"
	helpButtonText  = "❓ Help"
)

const (
	showCallback  = "show"
	idsCallback   = "ids"
	undoCallback  = "undo"
	clearCallback = "clear"
)

// maxListedIDs bounds the identifiers listed in one message.
const maxListedIDs = 300

const gifFilename = "selection.gif"

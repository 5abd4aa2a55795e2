package protocol

// Message type discriminators.
const (
	TypeMetadataRequest  = "metadata_request"
	TypeMetadataResponse = "metadata_response"
	TypeSliceRequest     = "slice_request"
	TypeSliceResponse    = "slice_response"
	TypeError            = "error"
)

// MetadataRequest asks for the grid bounds. It carries no other fields.
type MetadataRequest struct {
	Type string `json:"type"`
}

// MetadataResponse reports the grid bounds. The values are process-wide
// constants; the response is identical for every request and connection.
type MetadataResponse struct {
	Type    string `json:"type"`
	MaxRows uint64 `json:"maxRows"`
	MaxCols uint32 `json:"maxCols"`
}

// SliceRequest describes the client viewport. All values are unsigned on the
// wire; negative or fractional numbers fail the decode with a field error.
type SliceRequest struct {
	Type               string `json:"type"`
	ScreenWidth        uint32 `json:"screenWidth"`
	ScreenHeight       uint32 `json:"screenHeight"`
	HorizontalBuffer   uint32 `json:"horizontalBuffer"`
	VerticalBuffer     uint32 `json:"verticalBuffer"`
	DefaultColumnWidth uint32 `json:"defaultColumnWidth"`
	DefaultRowHeight   uint32 `json:"defaultRowHeight"`
	ScrollLeft         uint64 `json:"scrollLeft"`
	ScrollTop          uint64 `json:"scrollTop"`
}

// SliceResponse carries the computed window and its cell content.
// ColLetters has exactly ColCount entries and CellsByRow exactly RowCount
// rows of ColCount cells each.
type SliceResponse struct {
	Type       string     `json:"type"`
	StartRow   uint64     `json:"startRow"`
	RowCount   uint32     `json:"rowCount"`
	StartCol   uint32     `json:"startCol"`
	ColCount   uint32     `json:"colCount"`
	ColLetters []string   `json:"colLetters"`
	CellsByRow [][]string `json:"cellsByRow"`
}

// ErrorResponse reports a per-message failure. The connection stays open.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

package dto

// PositionRequest is the payload of the external position service.
type PositionRequest struct {
	ItemName string `json:"item_name"`
}

// PositionResponse is what the position service answers. A found item
// carries the row/position fields; a miss carries Error instead. Pointer
// fields distinguish "absent" from zero.
type PositionResponse struct {
	ItemName      string `json:"item_name"`
	RowFromTop    *int   `json:"row_from_top"`
	PositionInRow *int   `json:"position_in_row"`
	Error         string `json:"error"`
}

package usage

type RecordRequest struct {
	Role   string  `json:"role" binding:"required"`
	Tokens int64   `json:"tokens" binding:"min=0"`
	Cost   float64 `json:"cost" binding:"min=0"`
}

package squad

type SelectionResponse struct {
	ModelIDs []string `json:"model_ids"`
}

type ReplaceSelectionRequest struct {
	ModelIDs []string `json:"model_ids" binding:"required"`
}

type ToggleRequest struct {
	ModelID string `json:"model_id" binding:"required"`
}

type ToggleResponse struct {
	ModelID  string `json:"model_id"`
	Selected bool   `json:"selected"`
}

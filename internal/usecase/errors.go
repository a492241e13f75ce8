package usecase

import "errors"

// Sentinel errors the server layer maps to response codes. The database
// layer translates driver/constraint failures into these, so the handlers
// never see gorm error values.
var (
	ErrClientNotFound     = errors.New("client not found")
	ErrAllocationNotFound = errors.New("allocation not found")
	ErrAllocationExists   = errors.New("allocation already exists")
	ErrReferenceNotFound  = errors.New("referenced client or asset not found")
)

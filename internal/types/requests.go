package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateResumeRequest is the request body for creating a document.
type CreateResumeRequest struct {
	Title string `json:"title" validate:"required,min=1"`
}

// CloneResumeRequest is the request body for cloning a document.
type CloneResumeRequest struct {
	Title string `json:"title" validate:"required,min=1"`
}

// SwitchCurrentRequest is the request body for moving the current pointer.
type SwitchCurrentRequest struct {
	ID string `json:"id" validate:"required"`
}

// ProfileFieldRequest updates one profile field. Summary updates send Lines;
// every other field sends Value.
type ProfileFieldRequest struct {
	Field string   `json:"field" validate:"required,oneof=name email phone url location photoUrl summary"`
	Value string   `json:"value,omitempty"`
	Lines []string `json:"lines,omitempty"`
}

// EntryFieldRequest updates one field of a section entry. Description
// updates send Lines; scalar fields send Value.
type EntryFieldRequest struct {
	Field string   `json:"field" validate:"required"`
	Value string   `json:"value,omitempty"`
	Lines []string `json:"lines,omitempty"`
}

// MoveEntryRequest reorders a section entry by one position.
type MoveEntryRequest struct {
	Direction MoveDirection `json:"direction" validate:"required,oneof=up down"`
}

// SkillsRequest updates the skills record: either the free-form description
// lines or one featured-skill slot by index.
type SkillsRequest struct {
	Descriptions []string `json:"descriptions,omitempty"`
	Slot         *struct {
		Index  int    `json:"index"`
		Skill  string `json:"skill"`
		Rating int    `json:"rating" validate:"min=0,max=5"`
	} `json:"slot,omitempty"`
}

// DescriptionsRequest replaces a free-form description list.
type DescriptionsRequest struct {
	Descriptions []string `json:"descriptions"`
}

// HeadingRequest sets a per-document section heading override.
type HeadingRequest struct {
	Heading string `json:"heading" validate:"required"`
}

// SessionRequest exchanges the shared access password for a session token.
type SessionRequest struct {
	Password string `json:"password" validate:"required"`
}

// SessionResponse carries an issued session token.
type SessionResponse struct {
	Token string `json:"token"`
}

var validate = validator.New()

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error { return validate.Struct(r) }

// Validate validates the CloneResumeRequest using the validator.
func (r *CloneResumeRequest) Validate() error { return validate.Struct(r) }

// Validate validates the SwitchCurrentRequest using the validator.
func (r *SwitchCurrentRequest) Validate() error { return validate.Struct(r) }

// Validate validates the ProfileFieldRequest using the validator.
func (r *ProfileFieldRequest) Validate() error { return validate.Struct(r) }

// Validate validates the MoveEntryRequest using the validator.
func (r *MoveEntryRequest) Validate() error { return validate.Struct(r) }

// Validate validates the HeadingRequest using the validator.
func (r *HeadingRequest) Validate() error { return validate.Struct(r) }

// Validate validates the SessionRequest using the validator.
func (r *SessionRequest) Validate() error { return validate.Struct(r) }

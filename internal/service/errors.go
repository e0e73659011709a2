package service

import "errors"

var (
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrInvalidStatus    = errors.New("invalid generation status")
	ErrInvalidField     = errors.New("invalid field value")

	ErrTopicNotFound         = errors.New("topic not found")
	ErrSubtopicNotFound      = errors.New("subtopic not found")
	ErrEntityNotFound        = errors.New("entity not found")
	ErrProductTypeNotFound   = errors.New("product type not found")
	ErrEntityProductNotFound = errors.New("entity product not found")
	ErrLogNotFound           = errors.New("log not found")

	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrEntityProductExists = errors.New("entity product already exists for this entity and product type")
)

package dto

import "time"

type GenerateRequest struct {
	EntityId      int64  `json:"entityId" validate:"required"`
	ProductTypeId int64  `json:"productTypeId" validate:"required"`
	Prompt        string `json:"prompt"`
}

type GenerateResponse struct {
	Ok      bool                   `json:"ok"`
	Message string                 `json:"message"`
	Ep      *EntityProductResponse `json:"ep"`
	Prompt  string                 `json:"prompt"`
}

// GenerationJobMessage is the payload handed to the generation worker.
type GenerationJobMessage struct {
	JobId           string    `json:"job_id"`
	EntityProductId int64     `json:"entity_product_id"`
	EntityId        int64     `json:"entity_id"`
	ProductTypeId   int64     `json:"product_type_id"`
	Prompt          string    `json:"prompt"`
	RequestedAt     time.Time `json:"requested_at"`
}

type PingResponse struct {
	Ok bool      `json:"ok"`
	Ts time.Time `json:"ts"`
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/repository/specification"
	"brandkit-admin-be/internal/repository/unitofwork"
)

type ITopicService interface {
	GetAll(ctx context.Context) ([]*dto.TopicResponse, error)
	Create(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	GetSubtopics(ctx context.Context, topicId int64) ([]*dto.SubtopicResponse, error)
	CreateSubtopic(ctx context.Context, req *dto.CreateSubtopicRequest) (*dto.SubtopicResponse, error)
}

type topicService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTopicService(uowFactory unitofwork.RepositoryFactory) ITopicService {
	return &topicService{
		uowFactory: uowFactory,
	}
}

func (s *topicService) GetAll(ctx context.Context) ([]*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topics, err := uow.TopicRepository().FindAll(ctx, specification.OrderByName)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	result := make([]*dto.TopicResponse, 0, len(topics))
	for _, t := range topics {
		result = append(result, toTopicResponse(t))
	}
	return result, nil
}

func (s *topicService) Create(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidField)
	}

	now := time.Now()
	topic := entity.Topic{
		Name:        name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}
	if err := uow.TopicRepository().Create(ctx, &topic); err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	return toTopicResponse(&topic), nil
}

func (s *topicService) GetSubtopics(ctx context.Context, topicId int64) ([]*dto.SubtopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: topicId})
	if err != nil {
		return nil, fmt.Errorf("load topic: %w", err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	subtopics, err := uow.SubtopicRepository().FindAll(ctx,
		specification.ByTopicID{TopicID: topicId},
		specification.OrderByName,
	)
	if err != nil {
		return nil, fmt.Errorf("list subtopics: %w", err)
	}

	result := make([]*dto.SubtopicResponse, 0, len(subtopics))
	for _, st := range subtopics {
		result = append(result, toSubtopicResponse(st))
	}
	return result, nil
}

func (s *topicService) CreateSubtopic(ctx context.Context, req *dto.CreateSubtopicRequest) (*dto.SubtopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidField)
	}

	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: req.TopicId})
	if err != nil {
		return nil, fmt.Errorf("load topic: %w", err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	now := time.Now()
	subtopic := entity.Subtopic{
		TopicId:     req.TopicId,
		Name:        name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}
	if err := uow.SubtopicRepository().Create(ctx, &subtopic); err != nil {
		return nil, fmt.Errorf("create subtopic: %w", err)
	}

	return toSubtopicResponse(&subtopic), nil
}

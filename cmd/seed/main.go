package main

import (
	"log"

	"brandkit-admin-be/internal/config"
	"brandkit-admin-be/internal/model"
	"brandkit-admin-be/pkg/database"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type seedEntity struct {
	Name   string
	Colors string
	Style  string
}

type seedSubtopic struct {
	Name     string
	Entities []seedEntity
}

type seedTopic struct {
	Name      string
	Subtopics []seedSubtopic
}

var catalog = []seedTopic{
	{
		Name: "Sports",
		Subtopics: []seedSubtopic{
			{Name: "Football", Entities: []seedEntity{
				{Name: "Riverside Rovers", Colors: "navy, gold", Style: "classic crest"},
				{Name: "Northgate United", Colors: "red, white", Style: "modern minimal"},
			}},
			{Name: "Basketball", Entities: []seedEntity{
				{Name: "Harbor Hawks", Colors: "teal, black", Style: "aggressive mascot"},
			}},
		},
	},
	{
		Name: "Music",
		Subtopics: []seedSubtopic{
			{Name: "Bands", Entities: []seedEntity{
				{Name: "The Velvet Static", Colors: "purple, silver", Style: "retro psychedelic"},
			}},
		},
	},
}

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.LogLevel, database.PoolConfig{MaxOpenConns: 2})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding catalog...")
	for _, t := range catalog {
		topic, err := firstOrCreateTopic(db, t.Name)
		if err != nil {
			log.Printf("Error creating topic '%s': %v", t.Name, err)
			continue
		}
		for _, st := range t.Subtopics {
			subtopic, err := firstOrCreateSubtopic(db, topic.Id, st.Name)
			if err != nil {
				log.Printf("Error creating subtopic '%s': %v", st.Name, err)
				continue
			}
			for _, e := range st.Entities {
				seedEntityRow(db, subtopic.Id, e)
			}
		}
	}
	log.Println("Catalog seeding completed!")

	log.Println("Seeding Product Types...")
	SeedProductTypes(db)
}

func firstOrCreateTopic(db *gorm.DB, name string) (*model.Topic, error) {
	var topic model.Topic
	if err := db.Where("name = ?", name).First(&topic).Error; err == nil {
		log.Printf("Topic '%s' already exists, skipping...", name)
		return &topic, nil
	}
	topic = model.Topic{Name: name}
	if err := db.Create(&topic).Error; err != nil {
		return nil, err
	}
	log.Printf("Created topic: %s", name)
	return &topic, nil
}

func firstOrCreateSubtopic(db *gorm.DB, topicId int64, name string) (*model.Subtopic, error) {
	var subtopic model.Subtopic
	if err := db.Where("topic_id = ? AND name = ?", topicId, name).First(&subtopic).Error; err == nil {
		log.Printf("Subtopic '%s' already exists, skipping...", name)
		return &subtopic, nil
	}
	subtopic = model.Subtopic{TopicId: topicId, Name: name}
	if err := db.Create(&subtopic).Error; err != nil {
		return nil, err
	}
	log.Printf("Created subtopic: %s", name)
	return &subtopic, nil
}

func seedEntityRow(db *gorm.DB, subtopicId int64, e seedEntity) {
	s := slug.Make(e.Name)

	var existing model.Entity
	if err := db.Where("slug = ?", s).First(&existing).Error; err == nil {
		log.Printf("Entity '%s' already exists, skipping...", s)
		return
	}

	row := model.Entity{
		SubtopicId: subtopicId,
		Name:       e.Name,
		Colors:     &e.Colors,
		Style:      &e.Style,
		Slug:       &s,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("Error creating entity '%s': %v", e.Name, err)
		return
	}
	log.Printf("Created entity: %s (%s)", e.Name, s)
}

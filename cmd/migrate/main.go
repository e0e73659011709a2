package main

import (
	"fmt"
	"log"

	"brandkit-admin-be/internal/config"
	"brandkit-admin-be/internal/model"
	"brandkit-admin-be/pkg/database"
)

type foreignKey struct {
	name     string
	table    string
	column   string
	refTable string
	onDelete string
}

var foreignKeys = []foreignKey{
	{"fk_subtopics_topic", "subtopics", "topic_id", "topics", "CASCADE"},
	{"fk_entities_subtopic", "entities", "subtopic_id", "subtopics", "RESTRICT"},
	{"fk_entity_images_entity", "entity_images", "entity_id", "entities", "CASCADE"},
	{"fk_entity_products_entity", "entity_products", "entity_id", "entities", "CASCADE"},
	{"fk_entity_products_product_type", "entity_products", "product_type_id", "product_types", "CASCADE"},
}

func (fk foreignKey) sql() string {
	return fmt.Sprintf(
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(id) ON DELETE %s; END IF; END $$;`,
		fk.name, fk.table, fk.name, fk.column, fk.refTable, fk.onDelete,
	)
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

	models := model.All()
	log.Printf("Step 1: Running AutoMigrate for %d tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// AutoMigrate only creates constraints declared through associations,
	// which these models do not use.
	log.Println("Step 2: Ensuring foreign keys...")
	for _, fk := range foreignKeys {
		if err := db.Exec(fk.sql()).Error; err != nil {
			log.Printf("Warn: Failed to add foreign key %s: %v", fk.name, err)
		}
	}

	log.Println("Step 3: Creating updated_at triggers...")
	postMigrationSQL := []string{
		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		DECLARE _new_value TIMESTAMP WITH TIME ZONE;
		BEGIN
		  _new_value := now();
		  IF NEW.updated_at IS NOT DISTINCT FROM OLD.updated_at THEN NEW.updated_at = _new_value; END IF;
		  RETURN NEW;
		END; $$;`,
	}
	for _, table := range []string{"topics", "subtopics", "entities", "product_types", "entity_products"} {
		postMigrationSQL = append(postMigrationSQL, fmt.Sprintf(
			`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'set_%[1]s_updated_at') THEN CREATE TRIGGER set_%[1]s_updated_at BEFORE UPDATE ON %[1]s FOR EACH ROW EXECUTE FUNCTION set_current_timestamp_updated_at(); END IF; END $$;`,
			table,
		))
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed.")
}

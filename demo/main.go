package main

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Minimal in-memory REST demo. State lives for the process lifetime only
// and is not shared across instances.

type item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

type itemStore struct {
	mu    sync.RWMutex
	items []item
}

func (s *itemStore) list() []item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *itemStore) get(id string) (item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return item{}, false
}

func (s *itemStore) add(it item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, it)
}

func (s *itemStore) update(id string, name, value string) (item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			if name != "" {
				s.items[i].Name = name
			}
			if value != "" {
				s.items[i].Value = value
			}
			return s.items[i], true
		}
	}
	return item{}, false
}

func (s *itemStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func main() {
	store := &itemStore{}
	app := fiber.New()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "Demo API is running"})
	})

	app.Get("/items", func(c *fiber.Ctx) error {
		items := store.list()
		return c.JSON(fiber.Map{"success": true, "data": items, "total": len(items)})
	})

	app.Get("/items/:id", func(c *fiber.Ctx) error {
		it, ok := store.get(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Item not found"})
		}
		return c.JSON(fiber.Map{"success": true, "data": it})
	})

	app.Post("/items", func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		})
		if err := c.BodyParser(reqData); err != nil || reqData.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "name is required"})
		}

		it := item{
			ID:        uuid.NewString(),
			Name:      reqData.Name,
			Value:     reqData.Value,
			CreatedAt: time.Now().UTC(),
		}
		store.add(it)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": it})
	})

	app.Put("/items/:id", func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}

		it, ok := store.update(c.Params("id"), reqData.Name, reqData.Value)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Item not found"})
		}
		return c.JSON(fiber.Map{"success": true, "data": it})
	})

	app.Delete("/items/:id", func(c *fiber.Ctx) error {
		if !store.remove(c.Params("id")) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Item not found"})
		}
		return c.JSON(fiber.Map{"success": true, "message": "Item deleted"})
	})

	log.Fatal(app.Listen(":4000"))
}

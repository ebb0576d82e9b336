package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/etnz/classwork"
	"github.com/etnz/classwork/academy"
)

// AddRoom registers a room where local courses can be held.
func (s *Store) AddRoom(ctx context.Context, room int) error {
	if err := academy.ValidateRoom(room); err != nil {
		return err
	}
	known, err := s.exists(ctx, s.db, `SELECT 1 FROM Rooms WHERE id_room = ?`, room)
	if err != nil {
		return err
	}
	if known {
		return fmt.Errorf("room %d is already registered: %w", room, classwork.ErrDuplicateKey)
	}
	if _, err := s.exec(ctx, s.db, `INSERT INTO Rooms (id_room) VALUES (?)`, room); err != nil {
		return fmt.Errorf("could not add room %d: %w", room, err)
	}
	s.log.Info("room added", "room", room)
	return nil
}

func (s *Store) Rooms(ctx context.Context) ([]int, error) {
	return collect(ctx, s, s.db, func(rows *sql.Rows) (room int, err error) {
		err = rows.Scan(&room)
		return
	}, `SELECT id_room FROM Rooms ORDER BY id_room`)
}

package db

import (
	"database/sql"
	"errors"
	"strings"

	"TorrentHunter/internal/models"
)

const selectColumns = `
	SELECT id, source, url, title, seed, leech, published_at,
		filesize, magnetlink, updated_at
	FROM torrents`

// Upsert 以 url 为唯一键写入；重复抓取时用最新解析结果覆盖（包括把字段置回 NULL）
func (s *SQLiteDB) Upsert(t *models.Torrent) (int64, error) {
	query := `
	INSERT INTO torrents (
		source, url, title, seed, leech, published_at, filesize, magnetlink, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(url) DO UPDATE SET
		source = excluded.source,
		title = excluded.title,
		seed = excluded.seed,
		leech = excluded.leech,
		published_at = excluded.published_at,
		filesize = excluded.filesize,
		magnetlink = excluded.magnetlink,
		updated_at = CURRENT_TIMESTAMP
	RETURNING id
	`

	var id int64
	err := s.db.QueryRow(query,
		t.Source, t.URL, t.Title,
		t.Seed, t.Leech, t.PublishedDate, t.FileSize, t.MagnetLink,
	).Scan(&id)
	if err == nil {
		t.ID = id
	}

	return id, err
}

// GetByURL 不存在时返回 (nil, nil)
func (s *SQLiteDB) GetByURL(url string) (*models.Torrent, error) {
	rows, err := s.db.Query(selectColumns+" WHERE url = ?", url)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	torrents, err := s.scanTorrents(rows)
	if err != nil || len(torrents) == 0 {
		return nil, err
	}
	return torrents[0], nil
}

func (s *SQLiteDB) Search(cond models.SearchCondition) ([]*models.Torrent, error) {
	where, args := buildWhere(cond)

	query := selectColumns
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	if cond.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, cond.Limit, cond.Offset)
	} else if cond.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, cond.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.scanTorrents(rows)
}

func (s *SQLiteDB) Count(cond models.SearchCondition) (int, error) {
	where, args := buildWhere(cond)

	query := "SELECT COUNT(*) FROM torrents"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	var count int
	err := s.db.QueryRow(query, args...).Scan(&count)
	return count, err
}

func (s *SQLiteDB) Delete(cond models.SearchCondition) (int, error) {
	where, args := buildWhere(cond)
	if len(where) == 0 {
		return 0, errors.New("refusing to delete without conditions")
	}

	result, err := s.db.Exec("DELETE FROM torrents WHERE "+strings.Join(where, " AND "), args...)
	if err != nil {
		return 0, err
	}

	count, err := result.RowsAffected()
	return int(count), err
}

func buildWhere(cond models.SearchCondition) ([]string, []interface{}) {
	var where []string
	var args []interface{}

	if len(cond.Sources) > 0 {
		placeholders := strings.Repeat("?,", len(cond.Sources))
		placeholders = placeholders[:len(placeholders)-1]
		where = append(where, "source IN ("+placeholders+")")
		for _, src := range cond.Sources {
			args = append(args, src)
		}
	}

	if cond.Keyword != "" {
		where = append(where, "title LIKE ?")
		args = append(args, "%"+cond.Keyword+"%")
	}

	if cond.MinSeed > 0 {
		where = append(where, "seed >= ?")
		args = append(args, cond.MinSeed)
	}

	return where, args
}

func (s *SQLiteDB) scanTorrents(rows *sql.Rows) ([]*models.Torrent, error) {
	var torrents []*models.Torrent

	for rows.Next() {
		var t models.Torrent
		var seed, leech, filesize sql.NullInt64
		var published sql.NullTime
		var magnet sql.NullString

		err := rows.Scan(
			&t.ID, &t.Source, &t.URL, &t.Title,
			&seed, &leech, &published, &filesize, &magnet, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if seed.Valid {
			v := int(seed.Int64)
			t.Seed = &v
		}
		if leech.Valid {
			v := int(leech.Int64)
			t.Leech = &v
		}
		if published.Valid {
			v := published.Time.UTC()
			t.PublishedDate = &v
		}
		if filesize.Valid {
			v := filesize.Int64
			t.FileSize = &v
		}
		if magnet.Valid {
			v := magnet.String
			t.MagnetLink = &v
		}

		torrents = append(torrents, &t)
	}

	return torrents, rows.Err()
}

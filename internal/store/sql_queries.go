package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO userdata (userid, password, username)
    VALUES ($1, $2, $3)
    RETURNING userid, password, username, created_at;`

	findUserByUserID = `SELECT userid, password, username, created_at
    FROM userdata
    WHERE userid = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($1, $2, ...) placeholders. Post queries are built through it; user input
// reaches the SQL text only as bound parameters or as numeric pagination
// values validated at the service layer.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func createPostQuery(name, title, contents string, date any) sq.InsertBuilder {
	return psql.Insert("danwooblog").
		Columns("name", "title", "contents", "date").
		Values(name, title, contents, date).
		Suffix("RETURNING id, name, title, contents, date")
}

func listPostsQuery(limit, offset uint64) sq.SelectBuilder {
	return psql.Select("id", "name", "title", "date").
		From("danwooblog").
		OrderBy("date DESC").
		Limit(limit).
		Offset(offset)
}

func getPostQuery(id int64) sq.SelectBuilder {
	return psql.Select("id", "name", "title", "contents", "date").
		From("danwooblog").
		Where(sq.Eq{"id": id})
}

func updatePostQuery(id int64, name, title, contents string, date any) sq.UpdateBuilder {
	return psql.Update("danwooblog").
		Set("name", name).
		Set("title", title).
		Set("contents", contents).
		Set("date", date).
		Where(sq.Eq{"id": id})
}

func deletePostQuery(id int64) sq.DeleteBuilder {
	return psql.Delete("danwooblog").
		Where(sq.Eq{"id": id})
}

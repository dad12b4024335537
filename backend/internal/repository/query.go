package repository

import "gorm.io/gorm/clause"

// Identifiers are PascalCase, so every column reference goes through clause
// values and is quoted by the active dialect.

func col(name string) clause.Column {
	return clause.Column{Name: name}
}

func eq(name string, value interface{}) clause.Expression {
	return clause.Eq{Column: col(name), Value: value}
}

func in(name string, values ...interface{}) clause.Expression {
	return clause.IN{Column: col(name), Values: values}
}

func desc(name string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: col(name), Desc: true}
}

func asc(name string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: col(name)}
}

// derivedSlugEq matches LOWER(REPLACE(Name, ' ', '-')) against slug.
func derivedSlugEq(slug string) clause.Expression {
	return clause.Expr{
		SQL:  "LOWER(REPLACE(?, ' ', '-')) = ?",
		Vars: []interface{}{col("Name"), slug},
	}
}

func intsToAny(ids []int) []interface{} {
	out := make([]interface{}, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

package postgres

// Postgres implements model.Model on top of the gorm connection held by
// the config services singleton.
type Postgres struct {
}

package preferences

// Open returns preferences backed by the SQLite file at path, or by memory when path is
// empty. The returned close function releases the database.
func Open(path string) (*Preferences, func() error, error) {
	if path == "" {
		return New(NewMemoryStore()), func() error { return nil }, nil
	}

	store, err := NewSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	return New(store), store.Close, nil
}

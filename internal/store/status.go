package store

// CountBoards returns the number of boards.
func CountBoards(db DBTX) (int, error) {
	row := db.QueryRow(`SELECT COUNT(*) FROM boards`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountPeers returns the number of known peers.
func CountPeers(db DBTX) (int, error) {
	row := db.QueryRow(`SELECT COUNT(*) FROM peers`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

package sqlite

// ScanEntryRecord scans a single cached entry from a database row
func ScanEntryRecord(scanner Scanner) (*EntryRecord, error) {
	record := &EntryRecord{}

	err := scanner.Scan(
		&record.ID,
		&record.EmployeeID,
		&record.Date,
		&record.StartTime,
		&record.EndTime,
		&record.Project,
		&record.Description,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.Position,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ScanEntryRecords scans multiple cached entries from database rows
func ScanEntryRecords(rows Rows) ([]*EntryRecord, error) {
	var records []*EntryRecord
	for rows.Next() {
		record, err := ScanEntryRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ScanCardRecord scans the current timecard from a database row
func ScanCardRecord(scanner Scanner) (*CardRecord, error) {
	record := &CardRecord{}

	err := scanner.Scan(
		&record.ID,
		&record.EmployeeID,
		&record.StartDate,
		&record.EndDate,
		&record.Status,
		&record.SubmittedAt,
		&record.ApprovedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

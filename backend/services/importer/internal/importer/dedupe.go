package importer

// dedupe collapses records sharing an activity id down to the first
// occurrence. Export files may overlap in coverage; the earliest file in the
// configured read order is authoritative, so later duplicates are discarded
// rather than merged. The tie-break is purely positional.
func dedupe(records []RawActivityRecord) []RawActivityRecord {
	seen := make(map[int64]struct{}, len(records))
	out := make([]RawActivityRecord, 0, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.ActivityID]; dup {
			continue
		}
		seen[rec.ActivityID] = struct{}{}
		out = append(out, rec)
	}
	return out
}

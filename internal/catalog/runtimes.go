package catalog

// knownRuntimes maps application IDs of compatibility-layer runtime
// packages to their display names. These are resolved locally and never
// trigger a store lookup. The table is read-only after process start;
// user additions come in via New, merged over this map.
var knownRuntimes = map[uint32]string{
	1070560: "Steam Linux Runtime 1.0 (scout)",
	1391110: "Steam Linux Runtime 2.0 (soldier)",
	1493710: "Proton Experimental",
	1628350: "Steam Linux Runtime 3.0 (sniper)",
	2805730: "Proton 9.0",
}

// KnownRuntimes returns a copy of the builtin runtime table.
func KnownRuntimes() map[uint32]string {
	table := make(map[uint32]string, len(knownRuntimes))
	for id, name := range knownRuntimes {
		table[id] = name
	}
	return table
}

package purge

// Table describes one entry of the deletion plan: a table holding rows that
// reference properties, the foreign-key column pointing at them, and the
// name of the table's change-tracking trigger when it has one.
type Table struct {
	Name     string
	FKColumn string
	Trigger  string
}

// Plan is the ordered list of tables touched by a purge. The order is
// significant: dependents must be deleted before their parents so that
// foreign-key constraints hold at every step. Counts, deletes and the final
// report all iterate this one list so they cannot drift apart.
var Plan = []Table{
	// History tables first; rows here are written by the change-tracking
	// triggers and reference properties directly.
	{Name: "property_owner_history", FKColumn: "property_id"},
	{Name: "property_history", FKColumn: "property_id"},
	{Name: "loan_history", FKColumn: "property_id"},

	// mail_recipients references both loans and property_owners, so it has
	// to go before either of them.
	{Name: "mail_recipients", FKColumn: "property_id"},
	{Name: "loans", FKColumn: "property_id"},
	{Name: "property_owners", FKColumn: "property_id", Trigger: "track_property_owner_changes"},

	// Parent table last.
	{Name: "properties", FKColumn: "property_id", Trigger: "track_property_changes"},
}

// TriggerTables returns the plan entries that carry a change-tracking trigger.
func TriggerTables() []Table {
	var out []Table
	for _, t := range Plan {
		if t.Trigger != "" {
			out = append(out, t)
		}
	}
	return out
}

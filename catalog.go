package sarf

// StandardSchemes returns the catalog of ten standard schemes. Every call
// creates fresh values.
func StandardSchemes() []*Scheme {
	return []*Scheme{
		mustScheme("فاعل", "فاعل", "agent noun, the one who performs the action", AgentNoun),
		mustScheme("مفعول", "مفعول", "patient noun, the one undergoing the action", PatientNoun),
		mustScheme("افتعل", "افتعل", "verb form VIII", FormVIIIVerb),
		mustScheme("تفعيل", "تفعيل", "verbal noun (masdar)", VerbalNoun),
		mustScheme("مفعل", "مفعل", "noun of place, where the action happens", PlaceNoun),
		mustScheme("فعيل", "فعيل", "qualifying adjective", Adjective),
		mustScheme("فعال", "فعال", "intensive form of the agent noun", AgentNoun),
		mustScheme("تفاعل", "تفاعل", "verb form VI, reciprocal action", Other),
		mustScheme("انفعال", "انفعال", "verb form VII, passive or reflexive", Other),
		mustScheme("استفعال", "استفعال", "verb form X, request or pursuit", Other),
	}
}

// LoadStandardSchemes puts the standard catalog into table, replacing
// schemes of the same name. It returns the number of schemes put.
func LoadStandardSchemes(table *SchemeTable) int {
	n := 0
	for _, s := range StandardSchemes() {
		if err := table.Put(s.Name(), s); err != nil {
			tracer().Errorf("cannot register scheme %s: %v", s.Name(), err)
			continue
		}
		n++
	}
	tracer().Infof("%d standard schemes registered", n)
	return n
}

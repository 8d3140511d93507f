package knowledge

// Record is the canned answer for a symptom: a probable diagnosis, a fixed
// confidence in [0,1] and a recommendation. Confidence comes from this table,
// never from the classification model.
type Record struct {
	Diagnosis      string  `json:"diagnosis"`
	Confidence     float64 `json:"confidence"`
	Recommendation string  `json:"recommendation"`
}

// Entry pairs a symptom name with its record. Entries live in a slice rather
// than a map because table order decides which entry wins when several names
// match the same input.
type Entry struct {
	Name   string
	Record Record
}

// SentinelName is the entry returned when neither matching stage produces a
// confident answer. It is always present and always the last entry.
const SentinelName = "General Symptoms"

// Base is the fixed symptom table: ordered for matching, indexed for lookup.
// It is built once at startup and never mutated afterwards, so it is safe to
// share across requests without locking.
type Base struct {
	entries []Entry
	index   map[string]Record
}

// NewBase returns the built-in symptom table. This is the authoritative
// source of truth for diagnoses and recommendations; for a real medical
// product the answers would come from a reviewed clinical source.
func NewBase() *Base {
	entries := []Entry{
		{
			Name: "Headache",
			Record: Record{
				Diagnosis:      "Tension Headache or Migraine",
				Confidence:     0.95,
				Recommendation: "Rest in a quiet, dark room and take over-the-counter pain relievers like ibuprofen or acetaminophen. If symptoms persist or worsen, consult a doctor.",
			},
		},
		{
			Name: "Fever",
			Record: Record{
				Diagnosis:      "Viral Infection",
				Confidence:     0.90,
				Recommendation: "Stay hydrated, get plenty of rest, and take a fever reducer. If fever is high or lasts more than a few days, see a doctor.",
			},
		},
		{
			Name: "Cough",
			Record: Record{
				Diagnosis:      "Common Cold or Bronchitis",
				Confidence:     0.85,
				Recommendation: "Soothe your throat with warm liquids and cough drops. Avoid irritants like smoke. If cough is severe or you have trouble breathing, seek medical advice.",
			},
		},
		{
			Name: "Fatigue",
			Record: Record{
				Diagnosis:      "Stress or Lack of Sleep",
				Confidence:     0.80,
				Recommendation: "Focus on improving sleep hygiene, managing stress, and maintaining a balanced diet. If fatigue is severe or persistent, it may indicate an underlying condition and a doctor should be consulted.",
			},
		},
		{
			Name: "Nausea",
			Record: Record{
				Diagnosis:      "Food Poisoning or Digestive Upset",
				Confidence:     0.88,
				Recommendation: "Drink clear fluids to stay hydrated. Eat bland foods like crackers and rice. Avoid heavy, greasy, or spicy foods.",
			},
		},
		{
			Name: SentinelName,
			Record: Record{
				Diagnosis:      "Unclear",
				Confidence:     0.50,
				Recommendation: "Your symptoms require more specific details. Please consult with a healthcare professional for a proper diagnosis.",
			},
		},
	}

	index := make(map[string]Record, len(entries))
	for _, e := range entries {
		index[e.Name] = e.Record
	}

	return &Base{entries: entries, index: index}
}

// Entries returns the table rows in insertion order.
func (b *Base) Entries() []Entry {
	return b.entries
}

// Names returns the symptom names in insertion order. These double as the
// candidate labels handed to the zero-shot classifier.
func (b *Base) Names() []string {
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the record for an exact symptom name.
func (b *Base) Lookup(name string) (Record, bool) {
	rec, ok := b.index[name]
	return rec, ok
}

// Sentinel returns the fallback record.
func (b *Base) Sentinel() Record {
	return b.index[SentinelName]
}

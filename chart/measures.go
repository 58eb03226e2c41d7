// SPDX-License-Identifier: EPL-2.0

package chart

// Measure is every record that shares one measure number, in chart order.
type Measure struct {
	Number  int
	Records []Record
}

// Measures groups consecutive records with the same measure number.
// It walks its input once, forward only; build a new one to start over.
type Measures struct {
	records []Record
	next    int
}

func NewMeasures(records []Record) *Measures {
	return &Measures{records: records}
}

// Next returns the following group, or false once the records are exhausted.
func (m *Measures) Next() (Measure, bool) {
	if m.next >= len(m.records) {
		return Measure{}, false
	}

	start := m.next
	number := m.records[start].Measure
	for m.next < len(m.records) && m.records[m.next].Measure == number {
		m.next++
	}

	return Measure{Number: number, Records: m.records[start:m.next:m.next]}, true
}

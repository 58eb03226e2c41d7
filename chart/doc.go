// SPDX-License-Identifier: EPL-2.0

// Package chart parses BMS-style rhythm charts.
//
// A chart is a line oriented text file. Three kinds of lines matter, tried in
// this order:
//
//	00111:00010000      data record: measure 001, channel 11, four slots
//	#WAV01 kick.wav     sample definition: id 01 (base 36) -> file
//	#BPM 150            metadata: key BPM -> "150"
//
// Everything else is ignored. Object codes and sample ids are two base-36
// digits, so ids range over 0..1295 and code 00 means "no event".
//
// Records are sorted by measure (stable, so equal measures keep file order)
// and can be walked one measure at a time with Measures:
//
//	c, err := chart.ParseFile("song.bms")
//	m := c.Measures()
//	for group, ok := m.Next(); ok; group, ok = m.Next() {
//	    // group.Records all share group.Number
//	}
package chart

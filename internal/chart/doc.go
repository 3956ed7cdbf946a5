// Package chart renders projections as terminal charts and SVG files.
//
// Terminal charts use asciigraph for line series and lipgloss-coloured
// block bars for the monthly profit bar chart. SVG output is plain XML
// written without a plotting dependency.
package chart

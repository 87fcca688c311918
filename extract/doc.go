// Package extract loads book text from EPUB and plain-text files.
//
// Extracted text keeps paragraph structure as blank lines so sentence
// splitters can treat headings and other fragments as separate units. All
// text is returned in Unicode NFC form.
package extract

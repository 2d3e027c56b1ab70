// Package wordio reads the two input files of a word ladder query:
// an anchors file whose first line is the END word and second line the
// BEGIN word, and a dictionary file with one candidate word per line.
//
// Every line is right-trimmed of carriage returns, tabs and spaces before use;
// leading whitespace is kept. Dictionary order is preserved and blank lines are
// passed through, since the ladder builder drops words of the wrong length anyway.
package wordio

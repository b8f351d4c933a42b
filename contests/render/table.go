package render

import (
	"net/url"

	"contests_printer/contests/filesystem"
)

type Link struct {
	Href string
	Text string
}

// Cell holds links to files of one group, they are rendered space separated
type Cell []Link

type Row struct {
	Name  string
	Cells []Cell
	Other Cell
}

// Table has one column per letter from A to the greatest letter present in any contest
type Table struct {
	Letters []string
	Rows    []Row
}

// MaxLetter returns the greatest problem letter over all contests, false if no contest has lettered files
func MaxLetter(contests []*filesystem.Contest) (byte, bool) {
	var maxLetter byte
	found := false
	for _, contest := range contests {
		letter, ok := contest.MaxLetter()
		if ok && (!found || letter > maxLetter) {
			maxLetter = letter
			found = true
		}
	}
	return maxLetter, found
}

// ProblemLink builds file URL from path prefix, contest name and file name
func ProblemLink(prefix string, contest string, filename string) string {
	return prefix + "/" + url.PathEscape(contest) + "/" + url.PathEscape(filename)
}

func NewTable(prefix string, contests []*filesystem.Contest) *Table {
	table := &Table{}

	maxLetter, ok := MaxLetter(contests)
	if ok {
		for letter := byte('A'); letter <= maxLetter; letter++ {
			table.Letters = append(table.Letters, string(rune(letter)))
		}
	}

	for _, contest := range contests {
		row := Row{
			Name:  contest.Name,
			Cells: make([]Cell, len(table.Letters)),
			Other: newCell(prefix, contest, contest.Unlabeled),
		}
		for i := range table.Letters {
			row.Cells[i] = newCell(prefix, contest, contest.Group(byte('A'+i)))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func newCell(prefix string, contest *filesystem.Contest, files []filesystem.ProblemFile) Cell {
	var cell Cell
	for _, file := range files {
		cell = append(cell, Link{
			Href: ProblemLink(prefix, contest.Name, file.Name),
			Text: file.Name,
		})
	}
	return cell
}

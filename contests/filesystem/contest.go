package filesystem

const (
	// ProblemExt is the only extension of files shown as problems
	ProblemExt = ".cpp"

	LettersCount = int('Z' - 'A' + 1)
)

type ProblemFile struct {
	Name string
	Path string
}

// Contest is one subdirectory of contests root with its problem files grouped by letter.
// Files inside every group are sorted by name
type Contest struct {
	Name string
	Path string

	Problems  [LettersCount][]ProblemFile
	Unlabeled []ProblemFile
}

// ProblemLetter returns the problem letter of file, which is its first character if it is in A-Z
func ProblemLetter(filename string) (byte, bool) {
	if len(filename) == 0 {
		return 0, false
	}
	if filename[0] >= 'A' && filename[0] <= 'Z' {
		return filename[0], true
	}
	return 0, false
}

// NewContest groups files keeping their order
func NewContest(name string, path string, files []ProblemFile) *Contest {
	contest := &Contest{
		Name: name,
		Path: path,
	}
	for _, file := range files {
		letter, ok := ProblemLetter(file.Name)
		if ok {
			contest.Problems[letter-'A'] = append(contest.Problems[letter-'A'], file)
		} else {
			contest.Unlabeled = append(contest.Unlabeled, file)
		}
	}
	return contest
}

// Group returns files of the letter, nil for letters outside A-Z
func (c *Contest) Group(letter byte) []ProblemFile {
	if letter < 'A' || letter > 'Z' {
		return nil
	}
	return c.Problems[letter-'A']
}

// MaxLetter returns the greatest letter having at least one file
func (c *Contest) MaxLetter() (byte, bool) {
	for i := LettersCount - 1; i >= 0; i-- {
		if len(c.Problems[i]) > 0 {
			return byte('A' + i), true
		}
	}
	return 0, false
}

// Files returns all files of contest, lettered groups first
func (c *Contest) Files() []ProblemFile {
	var files []ProblemFile
	for _, group := range c.Problems {
		files = append(files, group...)
	}
	return append(files, c.Unlabeled...)
}

// FindFile looks through all groups for file with exactly this name
func (c *Contest) FindFile(name string) *ProblemFile {
	for _, group := range c.Problems {
		for i := range group {
			if group[i].Name == name {
				return &group[i]
			}
		}
	}
	for i := range c.Unlabeled {
		if c.Unlabeled[i].Name == name {
			return &c.Unlabeled[i]
		}
	}
	return nil
}

func FindContest(contests []*Contest, name string) *Contest {
	for _, contest := range contests {
		if contest.Name == name {
			return contest
		}
	}
	return nil
}

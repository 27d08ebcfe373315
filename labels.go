package regioncount

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLabels reads the class labels the detection model was trained on
// from the given text file.  It should contain one label per line, the
// line number being the class index
func LoadLabels(file string) ([]string, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		labels = append(labels, line)
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return labels, nil
}

// LabelIndex returns the class index of the given label name, or -1 if
// the label is not in the list
func LabelIndex(labels []string, name string) int {

	for i, label := range labels {
		if label == name {
			return i
		}
	}

	return -1
}

// LabelIndexes resolves a list of label names to class indexes.  An
// unknown label name is a configuration error
func LabelIndexes(labels []string, names []string) ([]int, error) {

	res := make([]int, 0, len(names))

	for _, name := range names {

		idx := LabelIndex(labels, name)

		if idx == -1 {
			return nil, fmt.Errorf("unknown label %q", name)
		}

		res = append(res, idx)
	}

	return res, nil
}

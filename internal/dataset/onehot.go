package dataset

import "fmt"

// MakeOneHot encodes labels as a row-major [len(labels), numClasses] matrix.
func MakeOneHot(labels []int, numClasses int) ([]int16, error) {
	var result = make([]int16, len(labels)*numClasses)
	for i, label := range labels {
		if label < 0 || label >= numClasses {
			return nil, fmt.Errorf("label %v out of range [0, %v) at row %v", label, numClasses, i)
		}
		result[i*numClasses+label] = 1
	}
	return result, nil
}

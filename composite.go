package shapeops

import "errors"

func swapRemove(shapes []*Shape, i int) []*Shape {
	shapes[i] = shapes[len(shapes)-1]
	return shapes[:len(shapes)-1]
}

// CompositeBoolean applies the operation across any number of shapes. Union and
// Intersection repeatedly merge pairs until no pair can be combined further.
// SubtractBack removes every following shape from the first, SubtractFront removes every
// preceding shape from the last, and Difference collects what remains of each shape
// after subtracting all others.
func CompositeBoolean(op Op, shapes []*Shape) ([]*Shape, error) {
	if len(shapes) == 0 {
		return nil, ErrInvalidSelection
	}
	shapes = append([]*Shape{}, shapes...)
	if op == SubtractFront {
		op = SubtractBack
		shapes[0], shapes[len(shapes)-1] = shapes[len(shapes)-1], shapes[0]
	}
	switch op {
	case Union, Intersection:
		// attempt to merge each shape with every other shape
		subject := 0
		for subject < len(shapes) {
			shape := 0
			for shape < len(shapes) && subject < len(shapes) {
				if shape == subject {
					shape++
					continue
				}
				partial, err := Boolean(op, shapes[subject], shapes[shape])
				if err == nil {
					// a successful merge yields exactly one shape
					if len(partial) == 0 {
						return nil, ErrNoResult
					}
					shapes = append(shapes, partial[0])
					shapes = swapRemove(shapes, subject)
					shapes = swapRemove(shapes, shape)
				} else if errors.Is(err, ErrNothingDone) {
					shape++
				} else {
					return nil, err
				}
			}
			subject++
		}
		return shapes, nil
	case SubtractBack:
		result := []*Shape{shapes[0]}
		for _, shape := range shapes[1:] {
			var temp []*Shape
			for _, partial := range result {
				partialResult, err := Boolean(SubtractBack, partial, shape)
				if err == nil {
					temp = append(temp, partialResult...)
				} else if errors.Is(err, ErrNothingDone) {
					temp = append(temp, partial)
				} else {
					return nil, err
				}
			}
			result = temp
		}
		return result, nil
	case Difference:
		var difference []*Shape
		for i := range shapes {
			shapes[0], shapes[i] = shapes[i], shapes[0]
			remains, err := CompositeBoolean(SubtractBack, shapes)
			if err != nil {
				return nil, err
			}
			difference = append(difference, remains...)
		}
		return difference, nil
	}
	return nil, ErrInvalidSelection
}

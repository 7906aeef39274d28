package tdapi

import (
	"slices"
)

func cloneAs[T Object](v T) T {
	if any(v) == nil {
		return v
	}
	return v.cloneObject().(T)
}

func cloneObjects[T Object](list []T) []T {
	if list == nil {
		return nil
	}
	out := make([]T, len(list))
	for i, v := range list {
		out[i] = cloneAs(v)
	}
	return out
}

func cloneRows[T Object](rows [][]T) [][]T {
	if rows == nil {
		return nil
	}
	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = cloneObjects(row)
	}
	return out
}

func cloneValues[T any](list []T) []T {
	return slices.Clone(list)
}

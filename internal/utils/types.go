package utils

func ToIntPtr(i int) *int {
	return &i
}

func ToInt32Ptr(i int32) *int32 {
	return &i
}

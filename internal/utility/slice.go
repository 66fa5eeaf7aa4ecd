package utility

// Contains báo cáo item có xuất hiện trong slice hay không.
// Dùng cho các danh sách nhỏ (denied fields, allowed operators) nên quét tuyến tính là đủ.
func Contains[T comparable](slice []T, item T) bool {
	for _, elem := range slice {
		if elem == item {
			return true
		}
	}
	return false
}

package excel

// ColumnLetter convierte un índice de columna base 0 a su nombre de hoja de
// cálculo: 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA". Codificación base 26
// repetida con acarreo cada 26.
func ColumnLetter(index int) string {
	col := ""
	for index >= 0 {
		col = string(rune('A'+index%26)) + col
		index = index/26 - 1
	}
	return col
}

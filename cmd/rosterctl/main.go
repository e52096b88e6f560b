// rosterctl herramientas de línea de comandos sobre el snapshot de la plantilla:
// generar datos de ejemplo, listar, exportar e importar.
//
// Usa la misma configuración que la API (STORAGE_DRIVER, STORAGE_PATH, ...).
package main

func main() {
	execute()
}

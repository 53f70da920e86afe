package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts holds the help of every wizard field, keyed by field key.
var Texts = map[string]HelpText{
	"rows": {
		Title:       "FILAS",
		Description: "Cantidad de filas de camas de la sala.",
		Details:     "Entre 1 y 10. Las camas se numeran desde (0,0).",
	},
	"cols": {
		Title:       "COLUMNAS",
		Description: "Cantidad de camas por fila.",
		Details:     "Entre 1 y 10. La sala tiene filas x columnas camas.",
	},
	"bed_name": {
		Title:       "NOMBRE",
		Description: "Nombre y apellido del paciente.",
		Details: `Solo letras y espacios (sin acentos).
Las tres primeras letras se muestran en el gráfico de camas.`,
	},
	"bed_age": {
		Title:       "EDAD",
		Description: "Edad del paciente en años.",
		Details:     "Entre 0 y 120.",
	},
	"bed_dni": {
		Title:       "DNI",
		Description: "Documento nacional de identidad.",
		Details:     "Exactamente 8 dígitos, por ejemplo 30111222.",
	},
	"bed_days": {
		Title:       "DÍAS INTERNADO",
		Description: "Días que el paciente lleva internado.",
		Details:     "0 para un ingreso del día. Se usa para el informe de estadías largas.",
	},
	"bulk_choice": {
		Title:       "CAMAS RESTANTES",
		Description: "Cómo completar el resto de la sala.",
		Details:     "Los pacientes generados tienen nombres, edades y DNI aleatorios válidos.",
	},
	"summary_action": {
		Title:       "CONFIRMAR",
		Description: "Ingresar los pacientes y abrir el menú, guardar la sala como YAML, o volver a editar.",
	},
	"roster_path": {
		Title:       "ARCHIVO DE SALA",
		Description: "Ruta del archivo YAML a guardar.",
		Details:     "Puede volver a cargarse con --from.",
	},
}

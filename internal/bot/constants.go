package bot

// Dialog steps. The empty step is the idle main menu.
const (
	StepIdle         = ""
	StepAddPartName  = "add_part_name"
	StepAddPartPrice = "add_part_price"
)

// Callback data prefixes, "<prefix>:<value>".
const (
	CallbackService    = "service"
	CallbackDifficulty = "difficulty"
	CallbackRemovePart = "remove"
)

// Reply keyboard buttons.
const (
	ButtonService    = "🛠 Jenis Servis"
	ButtonDifficulty = "⚙️ Tingkat Kesulitan"
	ButtonAddPart    = "➕ Tambah Sparepart"
	ButtonParts      = "🧾 Daftar Sparepart"
	ButtonTotal      = "💰 Total Estimasi"
	ButtonCancel     = "✖️ Batal"
)

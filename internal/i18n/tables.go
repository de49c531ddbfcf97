package i18n

// tables holds the message catalogs keyed by language code. English is
// the reference table; other languages may be partial.
var tables = map[string]map[string]string{
	"en": {
		"app.title": "pack - Python Package Manager",

		"ui.installed":     "Installed Packages",
		"ui.details":       "Package Details",
		"ui.requirement":   "Requirement",
		"ui.output":        "Output",
		"ui.check":         "Check Conflicts",
		"ui.refresh":       "Refresh",
		"ui.quit":          "Quit",
		"ui.busy":          "An operation is already running",
		"ui.no_selection":  "Select a package to see its details",
		"ui.requires_none": "No dependencies",

		"msg.listing":          "Listing installed packages...",
		"msg.checking":         "Checking %d requirement(s) for conflicts...",
		"msg.resolved":         "All requirements resolved successfully",
		"msg.conflict":         "Conflict detected: cannot install %s",
		"msg.conflict_edge":    "%s depends on %s",
		"msg.unknown_failure":  "Installation failed but no version conflict was identified",
		"msg.installing":       "Installing %s...",
		"msg.installed":        "Successfully installed %s",
		"msg.uninstalling":     "Uninstalling %s...",
		"msg.uninstalled":      "Successfully uninstalled %s",
		"msg.building":         "Building distribution packages...",
		"msg.built":            "Build completed: %d file(s) in dist/",
		"msg.signing":          "Signing distribution files...",
		"msg.signed":           "Created %d signature(s)",
		"msg.uploading":        "Uploading to %s...",
		"msg.uploaded":         "Upload to %s completed",
		"msg.project_created":  "Project %s created at %s",
		"msg.repo_added":       "Repository %s added",
		"msg.repo_removed":     "Repository %s removed",
		"msg.repo_default_set": "Repository %s is now the default",

		"err.invalid_requirement": "Invalid requirement: %v",
		"err.operation_failed":    "Operation failed: %v",
		"err.no_project":          "No Python project found at %s",
	},
	"it": {
		"app.title": "pack - Gestore di Pacchetti Python",

		"ui.installed":     "Pacchetti Installati",
		"ui.details":       "Dettagli Pacchetto",
		"ui.requirement":   "Requisito",
		"ui.output":        "Output",
		"ui.check":         "Verifica Conflitti",
		"ui.refresh":       "Aggiorna",
		"ui.quit":          "Esci",
		"ui.busy":          "Un'operazione è già in corso",
		"ui.no_selection":  "Seleziona un pacchetto per vederne i dettagli",
		"ui.requires_none": "Nessuna dipendenza",

		"msg.listing":          "Elenco dei pacchetti installati...",
		"msg.checking":         "Verifica di %d requisiti per conflitti...",
		"msg.resolved":         "Tutti i requisiti risolti con successo",
		"msg.conflict":         "Conflitto rilevato: impossibile installare %s",
		"msg.conflict_edge":    "%s dipende da %s",
		"msg.unknown_failure":  "Installazione fallita ma nessun conflitto di versione identificato",
		"msg.installing":       "Installazione di %s...",
		"msg.installed":        "%s installato con successo",
		"msg.uninstalling":     "Disinstallazione di %s...",
		"msg.uninstalled":      "%s disinstallato con successo",
		"msg.building":         "Costruzione dei pacchetti di distribuzione...",
		"msg.built":            "Costruzione completata: %d file in dist/",
		"msg.signing":          "Firma dei file di distribuzione...",
		"msg.signed":           "Create %d firme",
		"msg.uploading":        "Caricamento su %s...",
		"msg.uploaded":         "Caricamento su %s completato",
		"msg.project_created":  "Progetto %s creato in %s",
		"msg.repo_added":       "Repository %s aggiunto",
		"msg.repo_removed":     "Repository %s rimosso",
		"msg.repo_default_set": "Repository %s è ora il predefinito",

		"err.invalid_requirement": "Requisito non valido: %v",
		"err.operation_failed":    "Operazione fallita: %v",
		"err.no_project":          "Nessun progetto Python trovato in %s",
	},
}

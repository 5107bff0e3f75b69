package i18n

import (
	"sync"
	"testing"
)

func TestNewService(t *testing.T) {
	t.Run("carga los catálogos embebidos", func(t *testing.T) {
		service, err := NewService("es")
		if err != nil {
			t.Fatalf("esperaba éxito, obtuve error: %v", err)
		}

		if service.GetDefaultLanguage() != "es" {
			t.Errorf("esperaba idioma por defecto 'es', obtuve '%s'", service.GetDefaultLanguage())
		}

		supported := service.GetSupportedLanguages()
		if len(supported) != 2 {
			t.Errorf("esperaba 2 idiomas soportados, obtuve %d", len(supported))
		}
	})

	t.Run("error cuando el idioma por defecto no existe", func(t *testing.T) {
		_, err := NewService("fr")
		if err == nil {
			t.Error("esperaba error para idioma por defecto inexistente, obtuve éxito")
		}
	})
}

func TestService_T(t *testing.T) {
	service, err := NewService("es")
	if err != nil {
		t.Fatalf("fallo al inicializar el servicio: %v", err)
	}

	t.Run("traduce mensaje simple en español", func(t *testing.T) {
		result := service.T("es", "error.user_not_found")
		expected := "El usuario no existe"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})

	t.Run("traduce mensaje simple en inglés", func(t *testing.T) {
		result := service.T("en", "error.user_not_found")
		expected := "User does not exist"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})

	t.Run("interpola parámetros con templates", func(t *testing.T) {
		result := service.T("es", "error.not_found.detail", map[string]interface{}{"Resource": "Evento"})
		expected := "Evento no encontrado"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})

	t.Run("fallback al idioma por defecto cuando el idioma no existe", func(t *testing.T) {
		result := service.T("fr", "error.user_not_found")
		expected := "El usuario no existe"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})

	t.Run("retorna la clave cuando no hay traducción", func(t *testing.T) {
		result := service.T("es", "clave.inexistente")
		expected := "clave.inexistente"
		if result != expected {
			t.Errorf("esperaba '%s', obtuve '%s'", expected, result)
		}
	})
}

func TestService_IsLanguageSupported(t *testing.T) {
	service, err := NewService("es")
	if err != nil {
		t.Fatalf("fallo al inicializar el servicio: %v", err)
	}

	tests := []struct {
		lang     string
		expected bool
	}{
		{"es", true},
		{"en", true},
		{"fr", false},
		{"de", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := service.IsLanguageSupported(tt.lang)
			if result != tt.expected {
				t.Errorf("para idioma '%s', esperaba %v, obtuve %v", tt.lang, tt.expected, result)
			}
		})
	}
}

func TestService_CatalogosSimetricos(t *testing.T) {
	service, err := NewService("es")
	if err != nil {
		t.Fatalf("fallo al inicializar el servicio: %v", err)
	}

	// Toda clave en español debe existir también en inglés, y viceversa
	for key := range service.translations["es"] {
		if _, ok := service.translations["en"][key]; !ok {
			t.Errorf("la clave '%s' existe en es pero falta en en", key)
		}
	}
	for key := range service.translations["en"] {
		if _, ok := service.translations["es"][key]; !ok {
			t.Errorf("la clave '%s' existe en en pero falta en es", key)
		}
	}
}

func TestService_ThreadSafety(t *testing.T) {
	service, err := NewService("es")
	if err != nil {
		t.Fatalf("fallo al inicializar el servicio: %v", err)
	}

	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			_ = service.T("es", "error.not_found.detail", map[string]interface{}{"Resource": "Evento"})
		}()

		go func() {
			defer wg.Done()
			_ = service.T("en", "error.user_not_found")
		}()

		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("es")
		}()
	}

	wg.Wait()
}

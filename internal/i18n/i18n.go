// Package i18n holds the static string table for the two supported
// languages. It is a read-only lookup; entries with a %s verb are templates
// filled by T's variadic arguments.
package i18n

import (
	"fmt"

	"nammai/backend/internal/model"
)

// Key names one entry in the string table.
type Key string

const (
	KeyInitialMessage          Key = "initialMessage"
	KeySystemInstruction       Key = "systemInstruction"
	KeyNewSessionTitle         Key = "newSessionTitle"
	KeyAPIKeyError             Key = "apiKeyError"
	KeyAPIError                Key = "apiError"
	KeyImageOnlyError          Key = "imageOnlyError"
	KeySlidesPrompt            Key = "slidesPrompt"
	KeyImageAnalysisPrompt     Key = "imageAnalysisPrompt"
	KeyImageGenPlaceholder     Key = "imageGenerationPlaceholder"
	KeyImageGenDone            Key = "imageGenerationDone"
	KeyPublishError            Key = "publishError"
	KeyPublishSuccess          Key = "publishSuccess"
)

var tables = map[model.Language]map[Key]string{
	model.LanguageKannada: {
		KeyInitialMessage: "**NammAI** ge swaagatha!\n\nNanu nimma all-rounder AI assistant. En beku help madtini:\n\n1.  **Content Bardi**: Email, blog post, athva kavana - en bekadru kelabahudu.\n2.  **Visuals Maadi**: Image athva presentation slides create madakke kelage buttons use maadi.\n3.  **Coding Sahaaya**: Code bariyokke, debug madokke, athva explain madokke help madtini.\n4.  **Live Preview Nodona**: Naanu create maḍo yella UI live aagi preview pane nalli torsuthe.\n\nHegi help madli ivattu?",
		KeySystemInstruction: "You are NammAI — a versatile, all-rounder AI assistant. 'NammAI' is a mix of 'Namma' (a word from the Kannada language meaning 'Our') and 'AI'.\n" +
			"Your core mission is to be a helpful and creative partner to the user.\n" +
			"You MUST communicate in a friendly, conversational mix of romanized Kannada and English (known as \"Kanglish\"). Use as much Kannada as possible, but keep the words in the English alphabet. For example, instead of \"How can I help you?\", say \"Hegi help madli?\". Instead of \"Here is the image\", say \"Idh thagoni nimma image\". Maintain this unique personality in all your responses.\n" +
			"You can generate text content (emails, poems, stories), create images, build presentation slides, and write code.\n" +
			outputRules,
		KeyNewSessionTitle:     "Hosa Chat",
		KeyAPIKeyError:         "AI na start madakke aaglilla. Nimma API key check maadi, please.",
		KeyAPIError:            "Sorry, swalpa problem aagide. Nimma API key sariyaagide antha check maadi, matte try maadi.",
		KeyImageOnlyError:      "Eega, kevala image files maathra analysis ge support ide.",
		KeySlidesPrompt:        "Nanage ondu slideshow maadi kodi: %s",
		KeyImageAnalysisPrompt: "E-image na describe maadi.",
		KeyImageGenPlaceholder: "\"%s\" - idakke image generate madta idini...",
		KeyImageGenDone:        "Idh thagoni nimma image \"%s\" ge.",
		KeyPublishError:        "Publish madakke innu yenu create aagilla.",
		KeyPublishSuccess:      "Project publish aagide! Link: %s",
	},
	model.LanguageEnglish: {
		KeyInitialMessage: "Welcome to **NammAI**!\n\nI'm your all-rounder AI assistant. I can help with:\n\n1.  **Writing Content**: Ask me to write an email, blog post, or a poem.\n2.  **Creating Visuals**: Use the buttons below to generate an image or presentation slides.\n3.  **Coding Assistance**: I can help you write, debug, or explain code.\n4.  **Live Previews**: Any UI I create will be shown live in the preview pane.\n\nHow can I help you today?",
		KeySystemInstruction: "You are NammAI — a versatile, all-rounder AI assistant.\n" +
			"Your core mission is to be a helpful and creative partner to the user.\n" +
			"You MUST communicate in clear, standard English. Maintain a friendly, confident, and practical personality.\n" +
			"You can generate text content (emails, poems, stories), create images, build presentation slides, and write code.\n" +
			outputRules,
		KeyNewSessionTitle:     "New Chat",
		KeyAPIKeyError:         "Could not start the AI. Please check your API key.",
		KeyAPIError:            "Sorry, something went wrong. Please check your API key and try again.",
		KeyImageOnlyError:      "For now, only image files are supported for analysis.",
		KeySlidesPrompt:        "Create a slideshow about: %s",
		KeyImageAnalysisPrompt: "Describe this image.",
		KeyImageGenPlaceholder: "Generating an image for \"%s\"...",
		KeyImageGenDone:        "Here is the image for \"%s\".",
		KeyPublishError:        "Nothing has been created yet to publish.",
		KeyPublishSuccess:      "Project published! Link: %s",
	},
}

const outputRules = "**Output Rules:**\n" +
	"- When asked to create a visual component, web page, or anything with a UI, you MUST respond with a single HTML code block (tagged with `html`). This HTML file should be self-contained, with any necessary CSS in a <style> tag and any JavaScript in a <script> tag inside the HTML body.\n" +
	"- When asked to generate slides, you MUST respond with a single HTML code block (tagged with `html`). This HTML should represent a slideshow. Each slide should be a div with a class `slide`. Use simple inline CSS in a <style> tag for a clean presentation look. Do not add external navigation buttons; the user will scroll.\n" +
	"All features are free. There is no login or upgrade option."

// T looks up key in lang's table, falling back to English for unknown
// languages or missing entries. Template entries are filled with args.
func T(lang model.Language, key Key, args ...any) string {
	table, ok := tables[lang]
	if !ok {
		table = tables[model.LanguageEnglish]
	}
	entry, ok := table[key]
	if !ok {
		entry = tables[model.LanguageEnglish][key]
	}
	if len(args) == 0 {
		return entry
	}
	return fmt.Sprintf(entry, args...)
}

// Valid reports whether lang names a supported language.
func Valid(lang model.Language) bool {
	_, ok := tables[lang]
	return ok
}

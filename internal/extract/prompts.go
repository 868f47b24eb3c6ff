package extract

// recipeJSONShape documents the object the model must produce for a single
// recipe. Shared by every single-recipe prompt.
const recipeJSONShape = `{
  "title": "...",
  "description": "...",
  "prep_time": "...",
  "cook_time": "...",
  "servings": 4,
  "difficulty": "makkelijk|gemiddeld|moeilijk",
  "gang": "...",
  "uitgever": "...",
  "ingredients": [{"amount": 250, "unit": "g", "name": "bloem", "section": ""}],
  "instructions": "1. ...\n2. ..."
}`

// PDFPrompt asks for every recipe in a cookbook PDF in one call.
const PDFPrompt = `Je krijgt een kookboek als PDF. Haal ALLE recepten eruit.
Geef uitsluitend een JSON-array terug, zonder uitleg, waarin elk element dit
formaat heeft:
` + recipeJSONShape + `
Gebruik null voor een ontbrekende hoeveelheid. Neem het paginanummer op in
"source_pages" wanneer je dat kunt bepalen. Sla pagina's zonder recept over.`

// TextPrompt extracts a single recipe from page text or pasted text.
const TextPrompt = `Haal het recept uit de onderstaande tekst. Geef uitsluitend
een JSON-object terug, zonder uitleg, in dit formaat:
` + recipeJSONShape + `
Gebruik null voor een ontbrekende hoeveelheid.`

// ImagePrompt extracts a single recipe from one or more photos.
const ImagePrompt = `De foto's tonen samen één recept. Haal het recept eruit en
geef uitsluitend een JSON-object terug, zonder uitleg, in dit formaat:
` + recipeJSONShape + `
Gebruik null voor een ontbrekende hoeveelheid.`

// GroceryPrompt turns a dictated grocery transcript into a list of items.
const GroceryPrompt = `Hieronder staat een ingesproken boodschappenlijstje.
Zet het om naar een JSON-array, zonder uitleg, met elementen van de vorm
{"name": "melk", "amount": "2 liter"}. Laat "amount" leeg wanneer er geen
hoeveelheid genoemd wordt. Splits opsommingen in losse items.`

package sentiment

import (
	"regexp"

	"github.com/nguyentantai21042004/voc-pipeline/internal/textnorm"
)

// Indicator is a phrase and the weight it adds each time it occurs.
type Indicator struct {
	Phrase string
	Weight float64
}

// Table is an ordered list of indicators. Phrases are stored normalized.
type Table []Indicator

func newTable(entries ...Indicator) Table {
	t := make(Table, len(entries))
	for i, e := range entries {
		t[i] = Indicator{Phrase: textnorm.Normalize(e.Phrase), Weight: e.Weight}
	}
	return t
}

// Score sums occurrence count × weight over the table.
func (t Table) Score(normalized string) float64 {
	if normalized == "" {
		return 0
	}
	var score float64
	for _, ind := range t {
		if n := textnorm.Count(normalized, ind.Phrase); n > 0 {
			score += float64(n) * ind.Weight
		}
	}
	return score
}

// Summary-scope negative indicators, strongest first.
var summaryNegative = newTable(
	// strong
	Indicator{"frustration", 3}, Indicator{"furieux", 3}, Indicator{"furieuse", 3}, Indicator{"scandaleux", 3},
	Indicator{"inadmissible", 3}, Indicator{"n'importe quoi", 3}, Indicator{"insulte", 3}, Indicator{"insulter", 3},
	Indicator{"inapproprie", 3}, Indicator{"inacceptable", 3}, Indicator{"deplorable", 3},
	Indicator{"mecontentement", 3}, Indicator{"mecontent", 3}, Indicator{"mecontente", 3},
	Indicator{"colere", 3}, Indicator{"enerve", 3}, Indicator{"enervee", 3}, Indicator{"agace", 3},
	Indicator{"excede", 3}, Indicator{"excedee", 3}, Indicator{"exaspere", 3}, Indicator{"exasperee", 3},
	Indicator{"vol", 3}, Indicator{"vole", 3},

	// medium
	Indicator{"deception", 2}, Indicator{"decu", 2}, Indicator{"decue", 2}, Indicator{"decoit", 2},
	Indicator{"reclamation", 2}, Indicator{"litige", 2}, Indicator{"plainte", 2},
	Indicator{"retard", 2}, Indicator{"retards", 2}, Indicator{"retarde", 2},
	Indicator{"echoue", 2}, Indicator{"echec", 2}, Indicator{"echouee", 2},
	Indicator{"perdu", 2}, Indicator{"perte", 2}, Indicator{"perdue", 2}, Indicator{"perdus", 2}, Indicator{"egare", 2},
	Indicator{"endommage", 2}, Indicator{"endommagee", 2}, Indicator{"abime", 2}, Indicator{"casse", 2}, Indicator{"defectueux", 2},
	Indicator{"non livre", 2}, Indicator{"non recu", 2}, Indicator{"pas recu", 2}, Indicator{"pas livre", 2},
	Indicator{"pas receptionne", 2}, Indicator{"non receptionne", 2},
	Indicator{"conteste", 2}, Indicator{"contestation", 2},
	Indicator{"probleme recurrent", 2}, Indicator{"recurrent", 2}, Indicator{"recurrents", 2},
	Indicator{"infructueux", 2}, Indicator{"infructueuse", 2}, Indicator{"infructueuses", 2},
	Indicator{"reporte a plusieurs reprises", 2},
	Indicator{"livraison manquee", 2},
	Indicator{"erreur", 2},

	// light
	Indicator{"probleme", 1}, Indicator{"incident", 1}, Indicator{"difficulte", 1}, Indicator{"difficultes", 1},
	Indicator{"absence", 1}, Indicator{"absent", 1}, Indicator{"absente", 1},
	Indicator{"injoignable", 1},
	Indicator{"inquietude", 1}, Indicator{"inquiete", 1}, Indicator{"inquiet", 1},
	Indicator{"confusion", 1}, Indicator{"confus", 1}, Indicator{"confuse", 1},
	Indicator{"attente", 1}, Indicator{"attend depuis", 1},
	Indicator{"reporte", 1}, Indicator{"reportee", 1},
	Indicator{"incomplete", 1}, Indicator{"incomplet", 1},
	Indicator{"incorrecte", 1}, Indicator{"incorrect", 1}, Indicator{"erronee", 1}, Indicator{"errone", 1},
	Indicator{"bloque", 1}, Indicator{"bloquee", 1},
	Indicator{"retourne a l'expediteur", 1},
	Indicator{"impossible", 1},
)

var summaryPositive = newTable(
	Indicator{"satisfait", 3}, Indicator{"satisfaite", 3}, Indicator{"satisfaction", 3},
	Indicator{"remercie", 3}, Indicator{"remerciement", 3}, Indicator{"remercier", 3},
	Indicator{"excellent", 3}, Indicator{"parfait", 3}, Indicator{"parfaite", 3},

	Indicator{"resolu", 2}, Indicator{"resolue", 2}, Indicator{"resolution", 2},
	Indicator{"livre avec succes", 2}, Indicator{"livraison reussie", 2},
	Indicator{"confirme", 2}, Indicator{"confirmee", 2}, Indicator{"confirmation", 2},
	Indicator{"bien recu", 2}, Indicator{"bien livre", 2},
	Indicator{"prise en charge", 2},
	Indicator{"rassure", 2}, Indicator{"rassuree", 2},

	Indicator{"disponible", 1}, Indicator{"a confirme", 1},
	Indicator{"en cours de livraison", 1},
	Indicator{"organise", 1}, Indicator{"organisee", 1},
	Indicator{"clarifie", 1}, Indicator{"clarification", 1},
	Indicator{"accepte", 1}, Indicator{"acceptee", 1},
	Indicator{"programme", 1}, Indicator{"programmee", 1},
)

// Procedural phrases; each counts at most once.
var neutralPhrases = normalizeAll(
	"s'informer", "demande d'information", "obtenir des informations",
	"statut", "suivi", "verifier", "confirmer",
	"reprogrammer", "reprogrammation", "modifier l'adresse",
	"changement d'adresse", "mise a jour",
)

// Transcript-scope tables, mined from the raw customer voice.
var transcriptNegative = newTable(
	Indicator{"scandaleux", 3},
	Indicator{"honteux", 3},
	Indicator{"inadmissible", 3},
	Indicator{"n'importe quoi", 3},
	Indicator{"porter plainte", 3},
	Indicator{"degoutee", 3}, Indicator{"degoute", 3},
	Indicator{"incompetent", 3},
	Indicator{"cauchemar", 3},
	Indicator{"ras le bol", 3},
	Indicator{"c'est la honte", 3},

	Indicator{"c'est pas normal", 2},
	Indicator{"j'en ai marre", 2},
	Indicator{"incapable", 2},
	Indicator{"je fais comment", 2},
	Indicator{"c'est nul", 2},
	Indicator{"aucune nouvelle", 2},
	Indicator{"galere", 2},
	Indicator{"catastrophe", 2},
	Indicator{"injoignable", 2},
	Indicator{"c'est abuser", 2},

	Indicator{"franchement", 1},
	Indicator{"bloquee", 1},
	Indicator{"bloque", 1},
	Indicator{"pire", 1},
	Indicator{"pas possible", 0.5},
	Indicator{"souci", 0.5},
)

var transcriptPositive = newTable(
	Indicator{"c'est tres gentil", 3},
	Indicator{"vous etes gentil", 3},
	Indicator{"vous etes gentille", 3},
	Indicator{"excellent", 2},
	Indicator{"nickel", 2},
	Indicator{"genial", 2},

	Indicator{"merci beaucoup", 1.5},
	Indicator{"je vous remercie", 1.5},
	Indicator{"tres bien", 1},
	Indicator{"parfait", 1},
	Indicator{"super", 1},
	Indicator{"ca marche", 1},

	// routine politeness, weak signal
	Indicator{"bonne journee", 0.3},
	Indicator{"bon courage", 0.3},
	Indicator{"c'est bon", 0.3},
)

// ws matches the Unicode whitespace French summaries contain (NBSP included).
const ws = `[\s\p{Z}]+`

type bonusRule struct {
	name    string
	pattern *regexp.Regexp
	literal string
	bonus   float64
}

func (r bonusRule) matches(normalized string) bool {
	if r.pattern != nil {
		return r.pattern.MatchString(normalized)
	}
	return textnorm.Contains(normalized, r.literal)
}

var summaryBonuses = []bonusRule{
	{name: "expressed_emotion", pattern: regexp.MustCompile(`exprime?` + ws + `(sa|son)` + ws + `(frustration|mecontentement|colere|deception)`), bonus: 4},
	{name: "repeated_contact", pattern: regexp.MustCompile(`(quatrieme|troisieme|deuxieme|plusieurs)` + ws + `fois`), bonus: 2},
	{name: "long_wait", pattern: regexp.MustCompile(`depuis` + ws + `(plusieurs|deux|trois|quatre)` + ws + `(jours|semaines|mois)`), bonus: 1},
	{name: "several_occasions", literal: "a plusieurs reprises", bonus: 2},
}

// agentAction marks summaries where the agent did something about the complaint.
var agentAction = regexp.MustCompile(`(a ete|a confirme|agent a|a informe|a organise|a pris en charge)`)

func normalizeAll(phrases ...string) []string {
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = textnorm.Normalize(p)
	}
	return out
}

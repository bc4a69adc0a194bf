package theme

import "github.com/nguyentantai21042004/voc-pipeline/internal/textnorm"

const (
	// MaxThemes is the number of themes kept per conversation.
	MaxThemes = 3

	// Fallback is returned when no pattern matches.
	Fallback = "Service client"
)

// Pattern groups the trigger phrases of one theme. Triggers are normalized.
type Pattern struct {
	Label    string
	Triggers []string
}

func newPattern(label string, triggers ...string) Pattern {
	norm := make([]string, len(triggers))
	for i, t := range triggers {
		norm[i] = textnorm.Normalize(t)
	}
	return Pattern{Label: label, Triggers: norm}
}

// Declaration order breaks ranking ties.
var patterns = []Pattern{
	newPattern("Livraison non recue",
		"non livre", "pas livre", "non recu", "pas recu", "pas receptionne",
		"non receptionne", "marque comme livre", "indique comme livre",
		"colis non livre", "livraison manquee", "n'a pas ete livre",
	),
	newPattern("Retard de livraison",
		"retard", "reporte", "reportee", "en retard", "devait etre livre",
		"date de livraison", "delai", "attend depuis", "en attente",
		"pas de nouvelle", "aucune nouvelle",
	),
	newPattern("Colis endommage",
		"endommage", "endommagee", "abime", "casse", "defectueux",
		"defectueuse", "deteriore", "deterioree", "ouvert",
	),
	newPattern("Suivi et Tracking",
		"suivi", "tracking", "numero de suivi", "statut", "mise a jour",
		"pas de mise a jour", "scan", "information de suivi",
	),
	newPattern("Comportement du livreur",
		"comportement", "inapproprie", "insulte", "insulter",
		"impoli", "propos inappropries", "attitude",
		"n'a pas attendu", "n'a pas sonne", "pas sonne",
		"refus de monter", "n'a pas voulu",
	),
	newPattern("Point relais",
		"point relais", "point de retrait", "relais colis", "bureau de poste",
		"point relay", "relais", "retrait",
	),
	newPattern("Reprogrammation livraison",
		"reprogramm", "relivraison", "nouvelle livraison", "reprogrammer",
		"nouvelle tentative", "reporter", "modifier la date",
		"changement de date", "prochaine livraison",
	),
	newPattern("Reclamation",
		"reclamation", "litige", "plainte", "certificat de non-reception",
		"enquete", "investigation", "dossier",
	),
	newPattern("Communication et Notifications",
		"notification", "sms", "pas de notification", "aucune notification",
		"pas ete informe", "pas recu de notification",
		"pas recu de message", "pas de nouvelles", "aucune nouvelle",
		"sans nouvelle", "pas prevenu", "contradictoires", "contradictoire",
		"phishing", "message suspect",
	),
	newPattern("Adresse incorrecte",
		"adresse incorrecte", "adresse erronee", "mauvaise adresse",
		"erreur d'adresse", "adresse incomplete", "adresse inconnue",
		"changement d'adresse", "modifier l'adresse", "code postal",
	),
	newPattern("Colis perdu",
		"perdu", "perte", "egare", "disparu", "introuvable",
		"retrouv", "recherch",
	),
	newPattern("Probleme d'acces",
		"interphone", "code", "acces", "digicode", "porte",
		"boite aux lettres", "etage", "batiment", "residence",
		"gps", "localisation",
	),
	newPattern("DPD Pro / B2B",
		"societe", "entreprise", "professionnel",
		"client pro", "b2b", "expedition", "expedier",
		"bordereaux", "ramasse", "enlevement", "collecte",
		"fournisseur", "magasin", "boutique en ligne",
	),
	newPattern("Retour de colis",
		"retour", "renvoi", "renvoyer", "retourne a l'expediteur",
		"retour expediteur", "refus", "refuse",
	),
}

// Labels lists every theme label in declaration order.
func Labels() []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.Label
	}
	return out
}

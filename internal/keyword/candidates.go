package keyword

import "github.com/nguyentantai21042004/voc-pipeline/internal/textnorm"

const (
	// MaxKeywords is the number of keywords kept per conversation.
	MaxKeywords = 4

	// transcriptWeight scales transcript hits against summary hits.
	transcriptWeight = 0.5
)

// Fallback is returned when no candidate matches.
var Fallback = []string{"colis", "livraison"}

// Candidate maps a surface trigger onto its canonical label.
type Candidate struct {
	Trigger string
	Label   string
}

func newCandidates(pairs ...string) []Candidate {
	out := make([]Candidate, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Candidate{Trigger: textnorm.Normalize(pairs[i]), Label: pairs[i+1]})
	}
	return out
}

// trigger, label pairs
var candidates = newCandidates(
	// core delivery terms
	"livraison", "livraison", "livre", "livraison", "livrer", "livraison",
	"colis", "colis",
	"adresse", "adresse",
	"suivi", "suivi", "tracking", "suivi",

	// actors
	"livreur", "livreur", "chauffeur", "livreur",
	"destinataire", "destinataire",
	"expediteur", "expediteur",

	// places
	"agence", "agence", "depot", "depot",
	"relais", "point relais", "point de retrait", "point relais",
	"domicile", "domicile",

	// process
	"tentative", "tentative livraison", "tentatives", "tentative livraison",
	"reprogramm", "reprogrammation", "relivraison", "reprogrammation",

	// issues
	"reclamation", "reclamation", "litige", "reclamation",
	"retour", "retour",
	"retard", "retard", "retarde", "retard",
	"erreur", "erreur",
	"echec", "echec livraison",
	"absence", "absence", "absent", "absence",

	// communication
	"notification", "notification", "sms", "sms",
	"mail", "email", "e-mail", "email",
	"telephone", "telephone", "appel", "telephone",

	// tracking and proof
	"statut", "statut",
	"confirmation", "confirmation", "confirme", "confirmation",
	"preuve", "preuve livraison",
	"signature", "signature", "photo", "preuve photo",
	"scan", "scan",

	// emotion
	"frustration", "frustration", "mecontentement", "mecontentement",

	// partners
	"chronopost", "chronopost",
	"amazon", "amazon",
	"vendeur", "vendeur",
	"commande", "commande",

	// physical delivery
	"boite aux lettres", "boite aux lettres",
	"interphone", "interphone", "digicode", "interphone",
	"code", "code acces",
	"gps", "gps",
	"poids", "poids", "volumineux", "volumineux",
	"meuble", "meuble", "pneu", "pneus",

	// schedule
	"lundi", "jour ouvre",
	"samedi", "samedi",
	"matin", "creneau horaire", "midi", "creneau horaire",

	// transcript vocabulary
	"souci", "souci",
	"probleme", "probleme",
	"attends", "attente",
	"galere", "galere",
)

package identify

// Listas estáticas en minúsculas. Se comparan por contención de substring,
// no por token: "doberman pinscher mix" contiene "doberman".

var dogBreeds = []string{
	"chihuahua", "japanese spaniel", "maltese", "pekinese", "shih-tzu", "shih tzu",
	"blenheim spaniel", "papillon", "toy terrier", "rhodesian ridgeback",
	"afghan hound", "basset", "beagle", "bloodhound", "bluetick", "coonhound",
	"walker hound", "english foxhound", "redbone", "borzoi", "irish wolfhound",
	"italian greyhound", "greyhound", "whippet", "ibizan hound", "norwegian elkhound",
	"otterhound", "saluki", "scottish deerhound", "weimaraner",
	"staffordshire bullterrier", "american staffordshire terrier", "pit bull", "pitbull",
	"bedlington terrier", "border terrier", "kerry blue terrier", "irish terrier",
	"norfolk terrier", "norwich terrier", "yorkshire terrier", "yorkie",
	"wire-haired fox terrier", "fox terrier", "lakeland terrier", "sealyham terrier",
	"airedale", "cairn", "australian terrier", "dandie dinmont", "boston bull",
	"boston terrier", "miniature schnauzer", "giant schnauzer", "standard schnauzer",
	"schnauzer", "scotch terrier", "tibetan terrier", "silky terrier",
	"soft-coated wheaten terrier", "west highland white terrier", "lhasa",
	"flat-coated retriever", "curly-coated retriever", "golden retriever",
	"labrador", "chesapeake bay retriever", "retriever", "german short-haired pointer",
	"vizsla", "english setter", "irish setter", "gordon setter", "brittany spaniel",
	"clumber", "english springer", "welsh springer spaniel", "cocker spaniel",
	"sussex spaniel", "irish water spaniel", "spaniel", "kuvasz", "schipperke",
	"groenendael", "malinois", "briard", "kelpie", "komondor", "old english sheepdog",
	"shetland sheepdog", "sheepdog", "border collie", "collie", "bouvier des flandres",
	"rottweiler", "german shepherd", "pastor aleman", "pastor alemán", "doberman",
	"miniature pinscher", "pinscher", "greater swiss mountain dog",
	"bernese mountain dog", "appenzeller", "entlebucher", "boxer", "bull mastiff",
	"tibetan mastiff", "mastiff", "french bulldog", "bulldog", "great dane",
	"saint bernard", "st. bernard", "san bernardo", "eskimo dog", "malamute",
	"siberian husky", "husky", "dalmatian", "dálmata", "affenpinscher", "basenji",
	"pug", "leonberg", "newfoundland", "great pyrenees", "samoyed", "pomeranian",
	"chow", "keeshond", "brabancon griffon", "pembroke", "cardigan", "corgi",
	"toy poodle", "miniature poodle", "standard poodle", "poodle", "caniche",
	"mexican hairless", "xoloitzcuintli", "shiba inu", "akita", "dachshund",
	"teckel", "salchicha", "jack russell", "cavalier king charles", "bichon",
	"havanese", "shar pei", "chow chow", "podenco", "galgo", "mestizo",
}

var catBreeds = []string{
	"tabby", "tiger cat", "persian", "persa", "siamese", "siamés", "siames",
	"egyptian cat", "egyptian mau", "maine coon", "bengal", "bengala", "sphynx",
	"esfinge", "ragdoll", "british shorthair", "american shorthair",
	"exotic shorthair", "scottish fold", "abyssinian", "abisinio", "birman",
	"sagrado de birmania", "russian blue", "azul ruso", "norwegian forest",
	"bosque de noruega", "devon rex", "cornish rex", "selkirk rex", "burmese",
	"himalayan", "himalayo", "savannah cat", "manx", "turkish angora",
	"angora turco", "turkish van", "ocicat", "chartreux", "tonkinese", "somali",
	"singapura", "balinese", "oriental shorthair", "ragamuffin", "laperm",
	"siberian cat", "siberiano", "european shorthair", "común europeo",
}

var generalSpecies = []string{
	// mamíferos
	"dog", "puppy", "canine", "perro", "cachorro", "cat", "kitten", "feline",
	"gato", "gatito", "hamster", "guinea pig",
	"cobaya", "rabbit", "conejo", "bunny", "ferret", "hurón", "chinchilla",
	"gerbil", "field mouse", "ratón", "squirrel", "ardilla", "hedgehog", "erizo",
	"horse", "caballo", "pony", "donkey", "burro", "sheep", "oveja", "goat",
	"cabra", "pig", "cerdo", "hog", "cattle", "llama", "alpaca", "camel",
	"fox", "zorro", "wolf", "lobo", "coyote", "dingo", "jackal", "hyena",
	"lion", "león", "tiger", "tigre", "leopard", "jaguar", "cheetah", "cougar",
	"lynx", "lince", "bear", "oso", "panda", "raccoon", "mapache", "otter",
	"nutria", "weasel", "mink", "skunk", "badger", "beaver", "castor",
	"monkey", "gorilla", "chimpanzee", "orangutan", "baboon", "lemur",
	"elephant", "elefante", "rhinoceros", "hippopotamus", "zebra", "cebra",
	"giraffe", "jirafa", "deer", "ciervo", "gazelle", "impala", "bison",
	"koala", "kangaroo", "canguro", "wallaby", "sloth", "armadillo", "porcupine",
	"whale", "ballena", "dolphin", "delfín", "seal", "walrus",
	// aves
	"bird", "pájaro", "parrot", "loro", "macaw", "guacamayo", "cockatoo",
	"cacatúa", "parakeet", "periquito", "budgerigar", "lovebird", "canary",
	"canario", "finch", "pigeon", "paloma", "dove", "chicken", "gallina",
	"rooster", "gallo", "duck", "pato", "goose", "ganso", "swan", "cisne",
	"turkey", "pavo", "peacock", "owl", "búho", "lechuza", "eagle", "águila",
	"hawk", "falcon", "halcón", "vulture", "crow", "cuervo", "magpie", "robin",
	"sparrow", "gorrión", "hummingbird", "colibrí", "penguin", "pingüino",
	"flamingo", "flamenco", "pelican", "ostrich", "avestruz", "toucan", "tucán",
	"jay", "kingfisher", "woodpecker", "heron", "stork", "crane bird",
	// reptiles
	"turtle", "tortuga", "tortoise", "terrapin", "lizard", "lagarto", "gecko",
	"iguana", "chameleon", "camaleón", "anole", "agama", "bearded dragon",
	"komodo dragon", "snake", "serpiente", "python", "boa constrictor", "viper", "cobra",
	"rattlesnake", "king snake", "garter snake", "alligator", "crocodile",
	"cocodrilo",
	// peces
	"fish", "goldfish", "carpa", "koi", "betta", "guppy", "tetra",
	"cichlid", "angelfish", "clownfish", "pez payaso", "shark", "tiburón",
	"stingray", "ray fish", "salmon", "trout", "tench", "puffer", "barracouta",
	"sturgeon", "gar fish", "lionfish", "anemone fish",
	// anfibios
	"frog", "rana", "toad", "sapo", "salamander", "salamandra", "newt",
	"axolotl", "ajolote", "tree frog", "bullfrog",
	// invertebrados
	"spider", "araña", "tarantula", "tarántula", "scorpion", "escorpión",
	"crab", "cangrejo", "lobster", "langosta", "crayfish", "shrimp", "camarón",
	"snail", "caracol", "slug", "octopus", "pulpo", "jellyfish", "medusa",
	"starfish", "estrella de mar", "sea urchin", "butterfly", "mariposa",
	"moth", "beetle", "escarabajo", "ladybug", "mariquita", "bee", "abeja",
	"wasp", "avispa", "dragonfly", "grasshopper", "cricket", "mantis",
	"cockroach", "cucaracha", "caterpillar", "oruga", "earthworm", "lombriz",
	"centipede", "millipede", "isopod", "hermit crab",
}

// speciesMarkers: marcadores explícitos de especie además de las razas.
var speciesMarkers = map[Species][]string{
	SpeciesDog: {"dog", "puppy", "canine", "perro", "cachorro"},
	SpeciesCat: {"cat", "kitten", "feline", "gato", "gatito"},
}

// objectPhrases son etiquetas de objetos (vocabulario ImageNet) que contienen
// una palabra de animal. Se tapan antes de buscar keywords.
var objectPhrases = []string{
	"hotdog", "hot dog", "dogsled", "dog sled", "dog sleigh", "catamaran",
	"computer mouse", "mousetrap", "bowl", "teddy bear", "piggy bank", "beer",
}
